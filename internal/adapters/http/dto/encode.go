package dto

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/project-board/internal/platform/logging"
)

// Response content types.
const (
	ContentTypeJSON    = "application/json"
	ContentTypeProblem = "application/problem+json"
)

// Write sends v as JSON with the given status and content type. Once the
// header is out an encoding failure can only be logged.
func Write(w http.ResponseWriter, r *http.Request, status int, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response body",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}
