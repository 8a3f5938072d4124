package mcp

import (
	"context"
	"log/slog"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsamuelsen11/project-board/internal/platform/logging"
)

// loggingMiddleware puts a logger tagged with the method and session into
// the context of every inbound MCP request, then logs the outcome: debug on
// success, warn on failure. Notifications pass through untouched.
func loggingMiddleware(logger *slog.Logger) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if strings.HasPrefix(method, "notifications/") {
				return next(ctx, method, req)
			}

			log := logger.With(
				slog.String("mcp_method", method),
				slog.String("session_id", sessionID(req)),
			)
			ctx = logging.WithLogger(ctx, log)

			start := time.Now()
			result, err := next(ctx, method, req)
			elapsed := slog.Duration("duration", time.Since(start))

			if err != nil {
				log.WarnContext(ctx, "mcp request failed", elapsed, slog.Any("error", err))
				return result, err
			}
			log.DebugContext(ctx, "mcp request", elapsed)
			return result, nil
		}
	}
}

func sessionID(req sdkmcp.Request) string {
	if req == nil {
		return ""
	}
	session := req.GetSession()
	if session == nil {
		return ""
	}
	return session.ID()
}
