package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-board/internal/adapters/export"
	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

const (
	eventSnapshot = "snapshot"

	defaultHeartbeat = 15 * time.Second
	defaultTitle     = "Project Board"
)

// BoardHandler serves the column view: as JSON, as a live event stream and
// as an export.
type BoardHandler struct {
	svc       ports.BoardService
	title     string
	heartbeat time.Duration
	now       func() time.Time
}

// BoardOption configures a BoardHandler.
type BoardOption func(*BoardHandler)

// WithHeartbeat sets the interval of SSE keep-alive comments.
func WithHeartbeat(d time.Duration) BoardOption {
	return func(h *BoardHandler) {
		if d > 0 {
			h.heartbeat = d
		}
	}
}

// WithTitle sets the title printed on exports.
func WithTitle(title string) BoardOption {
	return func(h *BoardHandler) {
		if title != "" {
			h.title = title
		}
	}
}

// WithNow overrides the clock used to stamp exports.
func WithNow(now func() time.Time) BoardOption {
	return func(h *BoardHandler) { h.now = now }
}

// NewBoardHandler creates a BoardHandler backed by svc.
func NewBoardHandler(svc ports.BoardService, opts ...BoardOption) *BoardHandler {
	h := &BoardHandler{
		svc:       svc,
		title:     defaultTitle,
		heartbeat: defaultHeartbeat,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Board handles GET /api/v1/board.
func (h *BoardHandler) Board(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(h.svc.Columns(r.Context())))
}

// Stream handles GET /api/v1/board/stream. It sends the current columns as
// a "snapshot" event, then another after each board mutation, until the
// client disconnects. Bursts of mutations coalesce into one event carrying
// the latest state.
func (h *BoardHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	rc := http.NewResponseController(w)

	changed := make(chan struct{}, 1)
	sub := h.svc.Subscribe(func([]project.Project) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer sub.Unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	var seq uint64
	send := func() bool {
		seq++
		if err := writeEvent(w, seq, eventSnapshot, dto.ToBoardResponse(h.svc.Columns(ctx))); err != nil {
			logger.DebugContext(ctx, "board stream write failed", slog.Any("error", err))
			return false
		}
		return rc.Flush() == nil
	}
	if !send() {
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.DebugContext(ctx, "board stream closed", slog.Uint64("events", seq))
			return
		case <-changed:
			if !send() {
				return
			}
		case <-ticker.C:
			if _, err := w.Write([]byte(": ping\n\n")); err != nil {
				return
			}
			if rc.Flush() != nil {
				return
			}
		}
	}
}

// Export handles GET /api/v1/board/export?format=json|yaml|csv|pdf. The
// document is rendered in memory first so that a failure still produces a
// problem response.
func (h *BoardHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b := export.Board{
		Title:       h.title,
		GeneratedAt: h.now(),
		Columns:     h.svc.Columns(r.Context()),
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, b); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "board export failed",
			slog.String("operation", "Export"),
			slog.String("format", string(format)),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing export body failed", slog.Any("error", err))
	}
}
