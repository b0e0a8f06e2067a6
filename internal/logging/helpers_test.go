package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersWriteWhenLoggerConfigured(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Debug(logger, "debug msg")
	Info(logger, "info msg")
	Warn(logger, "warn msg")
	Error(logger, "error msg", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"debug msg", "info msg", "warn msg", "error msg", "error=boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output %q", want, out)
		}
	}
}

func TestHelpersIgnoreNilLogger(t *testing.T) {
	Debug(nil, "x")
	Info(nil, "x")
	Warn(nil, "x")
	Error(nil, "x", errors.New("boom"))
}
