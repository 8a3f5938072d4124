package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
)

var errHandlerPanic = errors.New("handler panicked")

// Recovery logs a handler panic with its stack and answers 500 with a
// problem body if nothing was sent yet. http.ErrAbortHandler passes through
// so net/http can drop the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := record(w)
			defer recoverPanic(logger, rw, r)
			next.ServeHTTP(rw, r)
		})
	}
}

func recoverPanic(logger *slog.Logger, rw *statusRecorder, r *http.Request) {
	v := recover()
	if v == nil {
		return
	}
	if v == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
		panic(v)
	}

	logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("panic_type", fmt.Sprintf("%T", v)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("response_started", rw.started),
		slog.String("stack", string(debug.Stack())),
	)

	if !rw.started {
		dto.WriteErrorResponse(rw, r, errHandlerPanic)
	}
}
