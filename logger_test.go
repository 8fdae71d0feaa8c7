package textmode

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("WithAttrs did not return nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup did not return nopHandler")
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	if debugEnabled() {
		t.Error("debug enabled on the default logger")
	}
}

func TestRendererLogsCacheMisses(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	g := NewGrid()
	_ = g.Set(0, 0, 'A', White, Red)
	if err := r.Render(g, NewFramebuffer(LogicalWidth, LogicalHeight), newSquareRasterizer()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "glyph composed") || !strings.Contains(out, "fg=White") {
		t.Errorf("missing cache miss record in log:\n%s", out)
	}
	if !strings.Contains(out, "frame rendered") {
		t.Errorf("missing frame record in log:\n%s", out)
	}
}
