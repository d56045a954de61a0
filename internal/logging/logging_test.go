package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestNewWriterLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(Config{Level: "warn", Format: FormatJSON}, &buf)

	logger.Info().Msg("dropped")
	logger.Warn().Str("k", "v").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "kept", rec["message"])
	assert.Equal(t, "v", rec["k"])
	assert.Contains(t, rec, "time")
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(NewWriterLogger(Config{Format: FormatJSON}, &buf), "api")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"api"`)
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "impactcalc.log")
	result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("to file")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	result := NewLoggerWithPath(Config{Output: OutputFile, File: filepath.Join(blocker, "app.log")})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())
}

func TestNewLoggerWithPath_NoFile(t *testing.T) {
	result := NewLoggerWithPath(Config{Output: OutputStderr})
	assert.False(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
}

func TestTraceIDs(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	generated := GetOrGenerateTraceID(ctx)
	_, err := ulid.ParseStrict(generated)
	require.NoError(t, err, "trace IDs are ULIDs")

	ctx = ContextWithTraceID(ctx, "trace-123")
	assert.Equal(t, "trace-123", TraceIDFromContext(ctx))
	assert.Equal(t, "trace-123", GetOrGenerateTraceID(ctx))

	assert.NotEqual(t, NewTraceID(), NewTraceID())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriterLogger(Config{Format: FormatJSON}, &buf)

	ctx := base.WithContext(context.Background())
	ctx = ContextWithTraceID(ctx, "abc")

	FromContext(ctx).Info().Msg("traced")
	assert.Contains(t, buf.String(), `"trace_id":"abc"`)

	// A bare context yields a usable logger.
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("nowhere")
	})
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "permission denied")

	assert.Contains(t, buf.String(), "Logging to /tmp/x.log")
	assert.Contains(t, buf.String(), "permission denied")
}
