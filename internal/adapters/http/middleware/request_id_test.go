package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/middleware"
)

func serveRequestID(t *testing.T, incoming string) (ctxID, respID string) {
	t.Helper()

	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctxID = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody)
	if incoming != "" {
		req.Header.Set("X-Request-ID", incoming)
	}
	handler.ServeHTTP(rec, req)

	return ctxID, rec.Header().Get("X-Request-ID")
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	ctxID, respID := serveRequestID(t, "")

	parsed, err := uuid.Parse(ctxID)
	if err != nil {
		t.Fatalf("generated ID %q is not a UUID: %v", ctxID, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("UUID version = %d, want 4", parsed.Version())
	}
	if respID != ctxID {
		t.Errorf("response X-Request-ID = %q, want %q", respID, ctxID)
	}
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	t.Parallel()

	ctxID, respID := serveRequestID(t, "incoming-123")

	if ctxID != "incoming-123" || respID != "incoming-123" {
		t.Errorf("IDs = (%q, %q), want incoming-123 for both", ctxID, respID)
	}
}

func TestRequestID_ReplacesOversizedIncoming(t *testing.T) {
	t.Parallel()

	ctxID, _ := serveRequestID(t, strings.Repeat("x", 500))

	if _, err := uuid.Parse(ctxID); err != nil {
		t.Errorf("oversized incoming ID kept as %q, want a fresh UUID", ctxID)
	}
}

func TestRequestID_UniquenessAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	for range 100 {
		id, _ := serveRequestID(t, "")
		ids[id] = true
	}

	if len(ids) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(ids))
	}
}

func TestRequestIDFromContext(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty string", id)
	}

	ctx := middleware.WithRequestID(context.Background(), "test-id")
	if got := middleware.RequestIDFromContext(ctx); got != "test-id" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "test-id")
	}
}

func TestRequestID_RejectsUnusableIncoming(t *testing.T) {
	t.Parallel()

	for _, incoming := range []string{
		strings.Repeat("a", 129),
		"id\nlevel=ERROR msg=forged",
		"tab\tinside",
	} {
		ctxID, respID := serveRequestID(t, incoming)
		if ctxID == incoming {
			t.Errorf("incoming %q was accepted", incoming)
		}
		if _, err := uuid.Parse(ctxID); err != nil {
			t.Errorf("replacement %q is not a UUID", ctxID)
		}
		if respID != ctxID {
			t.Errorf("response id %q, context id %q", respID, ctxID)
		}
	}
}
