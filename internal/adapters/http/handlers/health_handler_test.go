package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-board/mocks"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	breakerOpen := errors.New("webhook:hooks.example: failing (circuit breaker open)")

	tests := []struct {
		name       string
		critical   []string
		results    map[string]error
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "all healthy",
			critical:   []string{"board"},
			results:    map[string]error{"board": nil, "webhook:hooks.example": nil},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
			wantChecks: map[string]string{"board": "ok", "webhook:hooks.example": "ok"},
		},
		{
			name:       "webhook down only degrades",
			critical:   []string{"board"},
			results:    map[string]error{"board": nil, "webhook:hooks.example": breakerOpen},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthDegraded,
			wantChecks: map[string]string{"board": "ok", "webhook:hooks.example": breakerOpen.Error()},
		},
		{
			name:       "board down is not ready",
			critical:   []string{"board"},
			results:    map[string]error{"board": errors.New("store unavailable"), "webhook:hooks.example": breakerOpen},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: dto.HealthNotReady,
			wantChecks: map[string]string{"board": "store unavailable", "webhook:hooks.example": breakerOpen.Error()},
		},
		{
			name:       "everything critical by default",
			results:    map[string]error{"webhook:hooks.example": breakerOpen},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: dto.HealthNotReady,
			wantChecks: map[string]string{"webhook:hooks.example": breakerOpen.Error()},
		},
		{
			name:       "no checks registered",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: dto.HealthReady,
			wantChecks: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry, tt.critical...)

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

			requireStatus(t, rec, tt.wantCode)
			resp := decodeJSON[dto.HealthResponse](t, rec)
			assert.Equal(t, tt.wantStatus, resp.Status)
			if len(tt.wantChecks) == 0 {
				assert.Empty(t, resp.Checks)
			} else {
				assert.Equal(t, tt.wantChecks, resp.Checks)
			}
		})
	}
}
