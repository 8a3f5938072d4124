package middleware

import (
	"context"
	"net/http"
	"time"
)

// Streaming prepares a route whose response stays open (the board event
// stream, MCP sessions). It lifts the server's write deadline for the
// request and cancels the request context once stop is done, so graceful
// shutdown does not wait for clients to hang up.
func Streaming(stop context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Writers without deadline support (recorders, some proxies) are fine as is.
			_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

			ctx, cancel := context.WithCancel(r.Context())
			defer cancel()
			stopAfter := context.AfterFunc(stop, cancel)
			defer stopAfter()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
