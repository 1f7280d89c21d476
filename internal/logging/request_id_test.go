package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_RoundTrip(t *testing.T) {
	_, ok := RequestID(context.Background())
	assert.False(t, ok)

	_, ok = RequestID(WithRequestID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := RequestID(WithRequestID(context.Background(), "abc123"))
	assert.True(t, ok)
	assert.Equal(t, "abc123", id)
}

func TestRequestIDHandler_AddsAttribute(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewRequestIDHandler(slog.NewJSONHandler(&buf, nil)))

	logger.InfoContext(WithRequestID(context.Background(), "req-1"), "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-1", record["request_id"])
}

func TestRequestIDHandler_WithoutID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewRequestIDHandler(slog.NewJSONHandler(&buf, nil))).With("component", "test")

	logger.InfoContext(context.Background(), "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "request_id")
	assert.Equal(t, "test", record["component"])
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
