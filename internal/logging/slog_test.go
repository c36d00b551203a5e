package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "debug msg")
	log.Info(ctx, "info msg", "k", "v")
	log.Warn(ctx, "warn msg")
	log.Error(ctx, "error msg")

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "debug msg",
		"level=INFO", "info msg", "k=v",
		"level=WARN", "warn msg",
		"level=ERROR", "error msg",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	child := log.With("store", "records")
	child.Info(context.Background(), "hydrated")

	if !strings.Contains(buf.String(), "store=records") {
		t.Errorf("child logger did not include bound attrs:\n%s", buf.String())
	}
}
