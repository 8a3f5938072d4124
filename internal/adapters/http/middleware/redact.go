package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/project-board/internal/platform/logging"
)

// RedactHeaders turns headers into log attributes, replacing the values of
// logging.SensitiveHeaders with "[REDACTED]". Multi-value headers are joined
// with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		val := strings.Join(vals, ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			val = "[REDACTED]"
		}
		attrs = append(attrs, slog.String(key, val))
	}
	return attrs
}
