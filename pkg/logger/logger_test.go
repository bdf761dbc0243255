package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(buf *bytes.Buffer) Logger {
	return NewWithConfig(Config{
		Name:   "test",
		Format: FormatJSON,
		Level:  slog.LevelDebug,
		Writer: buf,
	})
}

func TestErrReturnsOriginalError(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	original := errors.New("boom")
	returned := log.Err("something failed", original)

	assert.Equal(t, original, returned)
	assert.Contains(t, buf.String(), "something failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestErrorWithTypeWrapsSentinel(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	sentinel := errors.New("not found")
	err := log.ErrorWithType(sentinel, "template missing", "templateId", "t1")

	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "template missing")
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "trace-123")
	assert.Equal(t, "trace-123", TraceIDFromContext(ctx))

	assert.Equal(t, "", TraceIDFromContext(context.Background()))
}

func TestTraceFromContextAddsAttribute(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	ctx := ContextWithTraceID(context.Background(), "trace-456")
	log.TraceFromContext(ctx).Info("hello")

	var entry map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-456", entry["traceID"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestFunctionAndFileAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.File("plan.go").Function("Complete").Info("done")

	var entry map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "plan.go", entry["file"])
	assert.Equal(t, "Complete", entry["function"])
}
