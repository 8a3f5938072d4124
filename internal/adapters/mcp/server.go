// Package mcp exposes the project board to MCP clients: agents can add,
// move and list projects through the same board service the HTTP API uses.
package mcp

import (
	"log/slog"
	"net/http"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsamuelsen11/project-board/internal/platform/logging"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

const (
	serverName            = "project-board"
	defaultVersion        = "dev"
	defaultSessionTimeout = 30 * time.Minute

	instructions = "A project board with two columns, active and finished. " +
		"Use list_projects to read the board, add_project to create an active project " +
		"and move_project to move a project between columns."
)

// Config configures the MCP server.
type Config struct {
	Version string
	Logger  *slog.Logger
}

// NewServer creates an MCP server with the board tools registered.
func NewServer(svc ports.BoardService, cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	version := cfg.Version
	if version == "" {
		version = defaultVersion
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    serverName,
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: instructions,
		Logger:       logger,
	})
	server.AddReceivingMiddleware(loggingMiddleware(logger))

	registerTools(server, &tools{svc: svc})

	return server
}

// NewHTTPHandler serves server over the streamable HTTP transport.
func NewHTTPHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{SessionTimeout: defaultSessionTimeout},
	)
}
