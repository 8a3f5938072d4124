package config

const (
	defaultServerPort = 8080

	defaultDescriptionMinLength = 5
	defaultPeopleMin            = 1
	defaultPeopleMax            = 5

	defaultWebhookWorkers = 4

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "5s",

		"log.level":  "info",
		"log.format": "json",

		"board.title_max_length":       0,
		"board.description_min_length": defaultDescriptionMinLength,
		"board.people_min":             defaultPeopleMin,
		"board.people_max":             defaultPeopleMax,

		"webhook.enabled":                                false,
		"webhook.urls":                                   []string{},
		"webhook.secret":                                 "",
		"webhook.workers":                                defaultWebhookWorkers,
		"webhook.client.timeout":                         "10s",
		"webhook.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"webhook.client.retry.initial_interval":          "100ms",
		"webhook.client.retry.max_interval":              "10s",
		"webhook.client.retry.multiplier":                defaultRetryMultiplier,
		"webhook.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"webhook.client.circuit_breaker.timeout":         "30s",
		"webhook.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"webhook.client.rate_limit.requests_per_second":  0.0,
		"webhook.client.rate_limit.burst_size":           1,

		"mcp.enabled": false,
		"mcp.path":    "/mcp",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "project-board",
	}
}
