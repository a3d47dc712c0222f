package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

type captureHandler struct {
	mu      sync.Mutex
	records []logRecord
}

func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

//nolint:varnamelen // r is conventional for slog.Record.
func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	rec := logRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]any),
	}

	r.Attrs(func(a slog.Attr) bool {
		rec.Attrs[a.Key] = a.Value.Any()

		return true
	})

	h.mu.Lock()
	h.records = append(h.records, rec)
	h.mu.Unlock()

	return nil
}

func (h *captureHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(_ string) slog.Handler      { return h }

func (h *captureHandler) find(message string) (logRecord, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, rec := range h.records {
		if rec.Message == message {
			return rec, true
		}
	}

	return logRecord{}, false
}

func setupTestLogger(t *testing.T) *captureHandler {
	t.Helper()

	oldDefault := slog.Default()

	h := &captureHandler{}
	slog.SetDefault(slog.New(h))

	t.Cleanup(func() { slog.SetDefault(oldDefault) })

	return h
}

func TestLogging_LogFields(t *testing.T) { //nolint:paralleltest // modifies global slog default
	capture := setupTestLogger(t)

	handler := Logging()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/values/a.b?type=string", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	rec, ok := capture.find("http request")
	require.True(t, ok)
	assert.Equal(t, slog.LevelInfo, rec.Level)
	assert.Equal(t, http.MethodGet, rec.Attrs["method"])
	assert.Equal(t, "/values/a.b", rec.Attrs["path"])
	assert.Equal(t, "type=string", rec.Attrs["query"])
	assert.Equal(t, int64(http.StatusOK), rec.Attrs["status"])
	assert.Equal(t, int64(5), rec.Attrs["bytes"])
	assert.Contains(t, rec.Attrs, "duration")
	assert.NotContains(t, rec.Attrs, "request_id")
}

func TestLogging_Levels(t *testing.T) { //nolint:paralleltest // modifies global slog default
	testCases := []struct {
		status int
		level  slog.Level
	}{
		{status: http.StatusOK, level: slog.LevelInfo},
		{status: http.StatusNotFound, level: slog.LevelWarn},
		{status: http.StatusUnprocessableEntity, level: slog.LevelWarn},
		{status: http.StatusInternalServerError, level: slog.LevelError},
	}

	for _, testCase := range testCases {
		capture := setupTestLogger(t)

		handler := Logging()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(testCase.status)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		rec, ok := capture.find("http request")
		require.True(t, ok)
		assert.Equal(t, testCase.level, rec.Level, "status %d", testCase.status)
		assert.Equal(t, int64(testCase.status), rec.Attrs["status"])
	}
}

func TestLogging_ImplicitOKStatus(t *testing.T) { //nolint:paralleltest // modifies global slog default
	capture := setupTestLogger(t)

	handler := Logging()(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	rec, ok := capture.find("http request")
	require.True(t, ok)
	assert.Equal(t, int64(http.StatusOK), rec.Attrs["status"])
}

func TestLogging_IncludesRequestID(t *testing.T) { //nolint:paralleltest // modifies global slog default
	capture := setupTestLogger(t)

	handler := Chain(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}), RequestID(), Logging())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	rec, ok := capture.find("http request")
	require.True(t, ok)
	assert.Equal(t, "req-123", rec.Attrs["request_id"])
}
