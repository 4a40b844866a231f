package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/ideaspark-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, config.ServerConfig{LogLevel: "warn", LogFormat: "json"})

	l.Info("hidden")
	l.Warn("shown", "component", "test")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "test", entry["component"])
}

func TestNewText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, config.ServerConfig{LogLevel: "debug", LogFormat: "text"})
	l.Debug("hello", "k", "v")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "k=v")
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := context.Background()

	assert.Nil(t, FromContext(ctx))
	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))

	scoped := fallback.With("trace_id", "abc")
	ctx = WithLogger(ctx, scoped)
	assert.Same(t, scoped, FromContext(ctx))
	assert.Same(t, scoped, FromContextOrDefault(ctx, fallback))
}
