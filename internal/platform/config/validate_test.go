package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-board/internal/platform/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr []string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:    "port zero",
			mutate:  func(c *config.Config) { c.Server.Port = 0 },
			wantErr: []string{"server.port must be between 1 and 65535, got 0"},
		},
		{
			name:    "no request timeout",
			mutate:  func(c *config.Config) { c.Server.RequestTimeout = 0 },
			wantErr: []string{"server.request_timeout must be positive"},
		},
		{
			name:    "unknown log level",
			mutate:  func(c *config.Config) { c.Log.Level = "verbose" },
			wantErr: []string{`log.level must be one of: debug, info, warn, error; got "verbose"`},
		},
		{
			name:    "people_min below one",
			mutate:  func(c *config.Config) { c.Board.PeopleMin = 0 },
			wantErr: []string{"board.people_min must be >= 1, got 0"},
		},
		{
			name:    "people_max below people_min",
			mutate:  func(c *config.Config) { c.Board.PeopleMin, c.Board.PeopleMax = 3, 2 },
			wantErr: []string{"board.people_max must be 0 or >= people_min (3), got 2"},
		},
		{
			name:    "negative description length",
			mutate:  func(c *config.Config) { c.Board.DescriptionMinLength = -1 },
			wantErr: []string{"board.description_min_length must be >= 0, got -1"},
		},
		{
			name:   "disabled webhook is not checked",
			mutate: func(c *config.Config) { c.Webhook.URLs, c.Webhook.Workers = nil, 0 },
		},
		{
			name: "enabled webhook without urls",
			mutate: func(c *config.Config) {
				c.Webhook.Enabled = true
				c.Webhook.URLs = nil
			},
			wantErr: []string{"webhook.urls must not be empty"},
		},
		{
			name: "relative webhook url",
			mutate: func(c *config.Config) {
				c.Webhook.Enabled = true
				c.Webhook.URLs = []string{"http://localhost:8081/hooks", "/hooks/board"}
			},
			wantErr: []string{`webhook.urls[1] must be an absolute http(s) URL, got "/hooks/board"`},
		},
		{
			name: "webhook client bounds",
			mutate: func(c *config.Config) {
				c.Webhook.Enabled = true
				c.Webhook.Client.Retry.MaxAttempts = 0
				c.Webhook.Client.RateLimit.RequestsPerSecond = 5
			},
			wantErr: []string{
				"webhook.client.retry.max_attempts must be >= 1, got 0",
				"webhook.client.rate_limit.burst_size must be >= 1 when rate limiting, got 0",
			},
		},
		{
			name:    "mcp path without slash",
			mutate:  func(c *config.Config) { c.MCP.Path = "mcp" },
			wantErr: []string{`mcp.path must start with /, got "mcp"`},
		},
		{
			name:   "disabled mcp path is not checked",
			mutate: func(c *config.Config) { c.MCP.Enabled, c.MCP.Path = false, "" },
		},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
				c.Telemetry.ServiceName = "project-board"
			},
			wantErr: []string{"telemetry.endpoint must not be empty when exporter is otlp"},
		},
		{
			name: "several problems at once",
			mutate: func(c *config.Config) {
				c.Server.Port = 70000
				c.Log.Format = "xml"
			},
			wantErr: []string{"server.port", `log.format must be one of: json, text; got "xml"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}

// validBaseConfig returns a Config that passes Validate.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 5 * time.Second,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Board: config.BoardConfig{
			DescriptionMinLength: 5,
			PeopleMin:            1,
			PeopleMax:            5,
		},
		Webhook: config.WebhookConfig{
			URLs:    []string{"http://localhost:8081/hooks/board"},
			Workers: 4,
			Client: config.ClientConfig{
				Timeout: 10 * time.Second,
				Retry: config.RetryConfig{
					MaxAttempts:     3,
					InitialInterval: 100 * time.Millisecond,
					MaxInterval:     10 * time.Second,
					Multiplier:      2,
				},
				CircuitBreaker: config.CircuitBreakerConfig{
					MaxFailures:   5,
					Timeout:       30 * time.Second,
					HalfOpenLimit: 1,
				},
			},
		},
		MCP:       config.MCPConfig{Enabled: true, Path: "/mcp"},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
	}
}
