package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := log
	SetLogger(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { log = prev })
	return buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestFromContext_AddsFields(t *testing.T) {
	buf := captureLogger(t)

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithUserID(ctx, "acc-1")
	ctx = WithDevice(ctx, "mobile")

	CtxInfo(ctx, "hello", "k", "v")

	rec := decodeLine(t, buf)
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "acc-1", rec["user_id"])
	assert.Equal(t, "mobile", rec["device"])
	assert.Equal(t, "v", rec["k"])
}

func TestCtxWithError(t *testing.T) {
	buf := captureLogger(t)

	CtxWithError(context.Background(), "boom", assert.AnError)

	rec := decodeLine(t, buf)
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, assert.AnError.Error(), rec["error"])
	assert.NotContains(t, rec, "request_id")
}

func TestHTTPLog_LevelByStatus(t *testing.T) {
	cases := map[int]string{200: "INFO", 404: "WARN", 503: "ERROR"}
	for status, level := range cases {
		buf := captureLogger(t)
		HTTPLog(GetLogger(), "GET", "/x", status, time.Millisecond, 10)
		assert.Equal(t, level, decodeLine(t, buf)["level"], "status %d", status)
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}
