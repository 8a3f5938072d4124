package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/middleware"
)

func TestStreaming_CancelsRequestWhenStopped(t *testing.T) {
	t.Parallel()

	stop, stopStreams := context.WithCancel(context.Background())
	entered := make(chan struct{})
	handler := middleware.Streaming(stop)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		close(entered)
		<-r.Context().Done()
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/board/stream", http.NoBody))
	}()

	<-entered
	stopStreams()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("streaming handler still running after stop")
	}
}

func TestStreaming_PassesThroughBeforeStop(t *testing.T) {
	t.Parallel()

	handler := middleware.Streaming(context.Background())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			t.Errorf("request context already done: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", http.NoBody))

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
}
