package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestWithTabID_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)
	ctx := WithTabID(WithContext(context.Background(), logger), "tab-1")

	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"tab_id":"tab-1"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	log.Info().Msg("dropped")
}

func TestNewWithFile_WritesRunFile(t *testing.T) {
	dir := t.TempDir()

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json"},
		FileConfig{Enabled: true, LogDir: dir},
	)
	require.NoError(t, err)
	logger.Info().Msg("to file")
	cleanup()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewWithFile_DisabledDiscards(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestLogPanic_LogsAndRepanics(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)
	ctx := WithContext(context.Background(), logger)

	assert.PanicsWithValue(t, "boom", func() {
		defer func() { LogPanic(ctx, recover()) }()
		panic("boom")
	})
	assert.Contains(t, buf.String(), `"panic":"boom"`)
	assert.Contains(t, buf.String(), "stack trace")
}

func TestLogPanic_NilIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { LogPanic(context.Background(), nil) })
}

func TestNewFromEnv_ReadsLevel(t *testing.T) {
	t.Setenv("WORKBENCH_LOG_LEVEL", "error")
	t.Setenv("WORKBENCH_LOG_FORMAT", "json")

	assert.Equal(t, zerolog.ErrorLevel, NewFromEnv().GetLevel())
}
