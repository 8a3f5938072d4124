// Package health tracks the components the readiness endpoint reports on:
// the board itself and, when enabled, each webhook target's circuit breaker.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-board/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a concurrency-safe ports.HealthRegistry. Checkers are
// registered at startup and run on every readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check. Zero means no bound beyond
// the caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.timeout = d
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a checker. A later checker with the same name replaces the
// earlier one's result in CheckAll.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check in registration order and returns the results
// keyed by name; nil means healthy. Checks run without the lock held.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = r.check(ctx, c)
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout <= 0 {
		return c.HealthCheck(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return c.HealthCheck(ctx)
}

// Healthy reports whether every result is nil.
func Healthy(results map[string]error) bool {
	for _, err := range results {
		if err != nil {
			return false
		}
	}
	return true
}

// CheckerFunc adapts a function to ports.HealthChecker.
type CheckerFunc struct {
	name string
	fn   func(ctx context.Context) error
}

// Func returns a HealthChecker named name that calls fn.
func Func(name string, fn func(ctx context.Context) error) *CheckerFunc {
	return &CheckerFunc{name: name, fn: fn}
}

// Name returns the checker's name.
func (c *CheckerFunc) Name() string { return c.name }

// HealthCheck calls the wrapped function.
func (c *CheckerFunc) HealthCheck(ctx context.Context) error { return c.fn(ctx) }
