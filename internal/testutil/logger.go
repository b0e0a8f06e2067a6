package testutil

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/preston-bernstein/owl-schedule-service/internal/logging"
)

// NewBufferLogger returns a slog logger backed by a buffer and the buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// ContextWithLogger returns a background context carrying logger.
func ContextWithLogger(logger *slog.Logger) context.Context {
	return logging.WithLogger(context.Background(), logger)
}
