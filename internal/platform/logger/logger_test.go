package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupReturnsConfiguredLogger(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		debugEnabled bool
	}{
		{"debug level", "debug", true},
		{"info level", "info", false},
		{"warn level", "warn", false},
		{"case-insensitive", "DEBUG", true},
		{"invalid falls back to info", "verbose", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			original := slog.Default()
			defer slog.SetDefault(original)

			log, err := Setup(config.ServerConfig{LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.Equal(t, tc.debugEnabled, log.Enabled(context.Background(), slog.LevelDebug))
			assert.True(t, log.Enabled(context.Background(), slog.LevelError))
		})
	}
}

func TestFromContextOrDefault(t *testing.T) {
	def := slog.New(slog.NewTextHandler(io.Discard, nil))
	stored := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, def, FromContextOrDefault(context.Background(), def))

	ctx := WithLogger(context.Background(), stored)
	assert.Same(t, stored, FromContextOrDefault(ctx, def))

	assert.NotNil(t, FromContextOrDefault(context.Background(), nil))
}
