// Package webhook pushes board snapshots to external HTTP endpoints. Each
// configured URL gets its own Publisher, and with it its own circuit
// breaker, rate limiter and health check.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/config"
	"github.com/jsamuelsen11/project-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

const userAgent = "project-board-webhook/1"

// maxDrainBytes caps how much of a response body is read before closing it.
const maxDrainBytes = 64 << 10

var (
	_ ports.SnapshotPublisher = (*Publisher)(nil)
	_ ports.HealthChecker     = (*Publisher)(nil)
)

// Payload is the JSON body of a delivery.
type Payload struct {
	Projects []ProjectPayload `json:"projects"`
	Count    int              `json:"count"`
}

// ProjectPayload is one project inside a Payload.
type ProjectPayload struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// Publisher delivers snapshots to one URL.
type Publisher struct {
	client *httpclient.Client
	target string
	name   string
	secret string
	logger *slog.Logger
}

// New creates a Publisher for rawURL. The URL must be absolute; the
// configuration layer checks that before New is reached.
func New(rawURL, secret string, client *httpclient.Client, logger *slog.Logger) (*Publisher, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("webhook url %q: not an absolute URL", rawURL)
	}
	if logger == nil {
		logger = logging.Discard()
	}

	name := "webhook:" + u.Host
	return &Publisher{
		client: client,
		target: rawURL,
		name:   name,
		secret: secret,
		logger: logger.With(slog.String("target", name)),
	}, nil
}

// NewFromConfig builds one Publisher per configured URL, each with its own
// instrumented client.
func NewFromConfig(cfg *config.WebhookConfig, metrics *telemetry.Metrics, logger *slog.Logger) ([]*Publisher, error) {
	pubs := make([]*Publisher, 0, len(cfg.URLs))
	for _, raw := range cfg.URLs {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("webhook url %q: %w", raw, err)
		}
		client := httpclient.New(&cfg.Client, "webhook:"+u.Host, metrics, logger)
		p, err := New(raw, cfg.Secret, client, logger)
		if err != nil {
			return nil, err
		}
		pubs = append(pubs, p)
	}
	return pubs, nil
}

// Target identifies the endpoint in logs: scheme, host and path only, so
// tokens carried in the query or user info stay out of the log.
func (p *Publisher) Target() string {
	u, err := url.Parse(p.target)
	if err != nil {
		return p.name
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path}).String()
}

// Name is the health check name, "webhook:<host>".
func (p *Publisher) Name() string {
	return p.name
}

// HealthCheck reports the endpoint's circuit breaker state.
func (p *Publisher) HealthCheck(ctx context.Context) error {
	return p.client.HealthCheck(ctx)
}

// Publish POSTs snapshot as a Payload. When a secret is configured the body
// is signed in the X-Board-Signature header. Transport failures, exhausted
// retries and an open breaker wrap domain.ErrUnavailable; other non-2xx
// answers are translated by status.
func (p *Publisher) Publish(ctx context.Context, snapshot []project.Project) error {
	body, err := json.Marshal(NewPayload(snapshot))
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	header := http.Header{}
	header.Set("User-Agent", userAgent)
	if p.secret != "" {
		header.Set(SignatureHeader, Sign(p.secret, body))
	}

	start := time.Now()
	resp, err := p.client.PostJSON(ctx, p.target, json.RawMessage(body), header)
	if err != nil {
		if resp != nil {
			closeBody(resp)
		}
		return fmt.Errorf("delivering to %s: %w: %w", p.name, domain.ErrUnavailable, err)
	}
	defer closeBody(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("delivering to %s: %w", p.name, translateStatus(resp))
	}

	p.logger.DebugContext(ctx, "snapshot delivered",
		slog.Int("projects", len(snapshot)),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// NewPayload converts a snapshot to the delivery body. Projects is never null.
func NewPayload(snapshot []project.Project) Payload {
	items := make([]ProjectPayload, len(snapshot))
	for i, pr := range snapshot {
		items[i] = ProjectPayload{
			ID:          pr.ID,
			Title:       pr.Title,
			Description: pr.Description,
			People:      pr.People,
			Status:      string(pr.Status),
			CreatedAt:   pr.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
	}
	return Payload{Projects: items, Count: len(items)}
}

// closeBody drains a bounded amount so the connection can be reused.
func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
	_ = resp.Body.Close()
}
