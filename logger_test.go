package msdftext

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
		t.Error("WithAttrs() did not return nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup() did not return nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("default logger should not be enabled")
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestLoggerReportsMissingGlyphs(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	txt := NewText(nil, WithFontStyle(testStyle(t)), WithText("A?B"), WithName("label"))
	if _, err := txt.Mesh(); err != nil {
		t.Fatalf("Mesh() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "characters missing from font") || !strings.Contains(out, "label") {
		t.Errorf("log output = %q, want missing character report", out)
	}

	// Reported once per distinct string.
	buf.Reset()
	if _, err := txt.Mesh(); err != nil {
		t.Fatalf("Mesh() error = %v", err)
	}
	if strings.Contains(buf.String(), "characters missing") {
		t.Error("missing characters reported twice for the same string")
	}
}

func TestLoggerReportsMissingGlyphsPerString(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	txt := NewText(nil, WithFontStyle(testStyle(t)))
	for range 3 {
		for _, s := range []string{"A?", "B!", "AB"} {
			txt.SetText(s)
			if _, err := txt.Mesh(); err != nil {
				t.Fatalf("Mesh(%q) error = %v", s, err)
			}
		}
	}
	if n := strings.Count(buf.String(), "characters missing"); n != 2 {
		t.Errorf("missing character reports = %d, want 2", n)
	}

	// A new font style reports again.
	buf.Reset()
	txt.SetFontStyle(testStyle(t))
	txt.SetText("A?")
	if _, err := txt.Mesh(); err != nil {
		t.Fatalf("Mesh() error = %v", err)
	}
	if n := strings.Count(buf.String(), "characters missing"); n != 1 {
		t.Errorf("reports after style change = %d, want 1", n)
	}
}
