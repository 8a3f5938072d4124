package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/project-board/internal/platform/logging"
)

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"level":"INFO"`},
		{format: "text", want: "level=INFO"},
		{format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("hello")

			if out := buf.String(); !strings.Contains(out, tt.want) || !strings.Contains(out, "hello") {
				t.Errorf("output = %q, want it to contain %q and the message", out, tt.want)
			}
		})
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		emit    func(*slog.Logger)
		wantOut bool
	}{
		{name: "debug passes at debug", level: "debug", emit: func(l *slog.Logger) { l.Debug("m") }, wantOut: true},
		{name: "uppercase level", level: "DEBUG", emit: func(l *slog.Logger) { l.Debug("m") }, wantOut: true},
		{name: "debug filtered at info", level: "info", emit: func(l *slog.Logger) { l.Debug("m") }},
		{name: "warn filtered at error", level: "error", emit: func(l *slog.Logger) { l.Warn("m") }},
		{name: "unknown level filters debug", level: "verbose", emit: func(l *slog.Logger) { l.Debug("m") }},
		{name: "unknown level passes info", level: "verbose", emit: func(l *slog.Logger) { l.Info("m") }, wantOut: true},
		{name: "empty level is info", level: "", emit: func(l *slog.Logger) { l.Debug("m") }},
		{name: "offset level", level: "info+4", emit: func(l *slog.Logger) { l.Info("m") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.emit(logging.New(tt.level, "json", &buf))

			if got := buf.Len() > 0; got != tt.wantOut {
				t.Errorf("wrote output = %v, want %v (output %q)", got, tt.wantOut, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("m")
	logging.New("info", "json", &infoBuf).Info("m")

	if !strings.Contains(debugBuf.String(), `"source"`) {
		t.Errorf("debug output = %q, want source location", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), `"source"`) {
		t.Errorf("info output = %q, want no source location", infoBuf.String())
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if got := logging.FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext on bare context returned something other than slog.Default()")
	}

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("debug", "json", &bytes.Buffer{})
	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second)

	if got := logging.FromContext(ctx); got != second {
		t.Error("FromContext did not return the most recently stored logger")
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() logger is enabled at error level")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization field", attr: slog.String("authorization", "Bearer supersecret-token"), secret: "supersecret-token"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "webhook secret prefix", attr: slog.String("webhook_secret", "s3cr3t-value"), secret: "s3cr3t-value"},
		{name: "bearer in arbitrary field", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{
			name:   "signature value in arbitrary field",
			attr:   slog.String("header", "sha256="+strings.Repeat("ab", 32)),
			secret: strings.Repeat("ab", 32),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, missing [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsBoardFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("project moved",
		slog.Int64("id", 1735689600000),
		slog.String("status", "finished"),
		slog.String("path", "/api/v1/projects/1735689600000/status"),
	)

	out := buf.String()
	for _, want := range []string{"1735689600000", "finished", "/api/v1/projects"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want %q kept", out, want)
		}
	}
}
