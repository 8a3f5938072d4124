package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.Board.check(&p)
	c.Webhook.check(&p)
	c.MCP.check(&p)
	c.Telemetry.check(&p)
	return p.err()
}

// problems collects validation failures keyed by their config path.
type problems []error

// require records "<key> <msg>" unless ok.
func (p *problems) require(ok bool, key, msg string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf("%s %s", key, fmt.Sprintf(msg, args...)))
	}
}

// oneOf records a failure unless value is one of allowed.
func (p *problems) oneOf(key, value string, allowed ...string) {
	p.require(slices.Contains(allowed, value), key,
		"must be one of: %s; got %q", strings.Join(allowed, ", "), value)
}

func (p problems) err() error {
	return errors.Join(p...)
}

func (s *ServerConfig) check(p *problems) {
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port", "must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout", "must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout", "must be positive")
	p.require(s.RequestTimeout > 0, "server.request_timeout", "must be positive")
}

func (l *LogConfig) check(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

func (b *BoardConfig) check(p *problems) {
	p.require(b.TitleMaxLength >= 0, "board.title_max_length", "must be >= 0, got %d", b.TitleMaxLength)
	p.require(b.DescriptionMinLength >= 0, "board.description_min_length", "must be >= 0, got %d", b.DescriptionMinLength)
	p.require(b.PeopleMin >= 1, "board.people_min", "must be >= 1, got %d", b.PeopleMin)
	p.require(b.PeopleMax == 0 || b.PeopleMax >= b.PeopleMin, "board.people_max",
		"must be 0 or >= people_min (%d), got %d", b.PeopleMin, b.PeopleMax)
}

func (w *WebhookConfig) check(p *problems) {
	if !w.Enabled {
		return
	}

	p.require(len(w.URLs) > 0, "webhook.urls", "must not be empty when webhook is enabled")
	for i, raw := range w.URLs {
		p.require(absoluteHTTP(raw), fmt.Sprintf("webhook.urls[%d]", i), "must be an absolute http(s) URL, got %q", raw)
	}
	p.require(w.Workers >= 1, "webhook.workers", "must be >= 1, got %d", w.Workers)
	w.Client.check(p, "webhook.client")
}

func absoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (cl *ClientConfig) check(p *problems, prefix string) {
	p.require(cl.Timeout > 0, prefix+".timeout", "must be positive")
	p.require(cl.Retry.MaxAttempts >= 1, prefix+".retry.max_attempts", "must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, prefix+".retry.multiplier", "must be positive, got %g", cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1, prefix+".circuit_breaker.max_failures",
		"must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.require(cl.RateLimit.RequestsPerSecond <= 0 || cl.RateLimit.BurstSize >= 1, prefix+".rate_limit.burst_size",
		"must be >= 1 when rate limiting, got %d", cl.RateLimit.BurstSize)
}

func (m *MCPConfig) check(p *problems) {
	if m.Enabled {
		p.require(strings.HasPrefix(m.Path, "/"), "mcp.path", "must start with /, got %q", m.Path)
	}
}

func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint", "must not be empty when exporter is otlp")
	p.require(t.ServiceName != "", "telemetry.service_name", "must not be empty")
}
