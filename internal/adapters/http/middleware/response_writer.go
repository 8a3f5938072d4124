// Package middleware holds the inbound HTTP middleware. The router applies
// them in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → [Timeout | Streaming] → handler
//
// Request/response routes get Timeout. The board stream and the MCP
// endpoint get Streaming, since Timeout buffers the whole response.
package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler produced.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	size    int64
	started bool
}

func record(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status only.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.started {
		return
	}
	sr.status, sr.started = code, true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.started = true
	n, err := sr.ResponseWriter.Write(b)
	sr.size += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the real writer, which the SSE
// handler relies on to flush.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
