// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/middleware"
)

// DefaultMCPPath is where the MCP endpoint is mounted when Routes.MCPPath is empty.
const DefaultMCPPath = "/mcp"

// Routes are the handlers the router dispatches to.
type Routes struct {
	Projects *handlers.ProjectHandler
	Board    *handlers.BoardHandler
	Health   *handlers.HealthHandler

	// MCP is the MCP streamable HTTP handler; nil leaves it unmounted.
	MCP     http.Handler
	MCPPath string
}

// RouterOptions tune how routes are wrapped.
type RouterOptions struct {
	// RequestTimeout bounds request/response routes; zero disables it.
	RequestTimeout time.Duration

	// Streams ends open streams when done. Nil means never.
	Streams context.Context
}

// NewRouter builds the chi router. middlewares wrap every route in the
// order given. Request/response routes additionally get the Timeout
// middleware; the board stream and MCP endpoint get Streaming instead.
func NewRouter(routes Routes, opts RouterOptions, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Group(func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(middleware.Timeout(opts.RequestTimeout))
		}

		r.Get("/health/live", routes.Health.Liveness)
		r.Get("/health/ready", routes.Health.Readiness)

		r.Get("/api/v1/projects", routes.Projects.ListProjects)
		r.Post("/api/v1/projects", routes.Projects.CreateProject)
		r.Get("/api/v1/projects/{id}", routes.Projects.GetProject)
		r.Patch("/api/v1/projects/{id}/status", routes.Projects.MoveProject)

		r.Get("/api/v1/board", routes.Board.Board)
		r.Get("/api/v1/board/export", routes.Board.Export)
	})

	streams := opts.Streams
	if streams == nil {
		streams = context.Background()
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Streaming(streams))

		r.Get("/api/v1/board/stream", routes.Board.Stream)

		if routes.MCP != nil {
			path := routes.MCPPath
			if path == "" {
				path = DefaultMCPPath
			}
			r.Handle(path, routes.MCP)
		}
	})

	return r
}
