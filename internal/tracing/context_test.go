package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID_Unique(t *testing.T) {
	a := NewTraceID()
	b := NewTraceID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-1")
	assert.Equal(t, "trace-1", GetTraceID(ctx))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", GetRequestID(ctx))
}

func TestGetTraceID_Missing(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithTraceID(context.Background(), "trace-42")
	logger := LoggerFromContext(ctx, base)
	logger.Info().Msg("hello")

	require.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}
