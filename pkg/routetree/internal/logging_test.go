package internal

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.raw), tt.raw)
	}
}

func TestSetRawInternalLogLevel(t *testing.T) {
	logger := GetInternalLogger()
	t.Cleanup(func() { SetInternalLogLevel(slog.LevelError) })

	SetRawInternalLogLevel("debug")
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	SetRawInternalLogLevel("error")
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
}
