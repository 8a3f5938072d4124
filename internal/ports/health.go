package ports

import "context"

// HealthChecker is one entry of the readiness report: the board, or a
// webhook target behind its circuit breaker.
type HealthChecker interface {
	// Name keys the check in the readiness body, e.g. "board" or
	// "webhook:hooks.example".
	Name() string

	// HealthCheck returns nil when healthy. It must honor ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry holds the checks behind GET /health/ready.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every check and keys the results by name. A nil value
	// means healthy.
	CheckAll(ctx context.Context) map[string]error
}
