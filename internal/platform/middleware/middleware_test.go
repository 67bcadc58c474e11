package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demoready/internal/platform/logger"
)

type entry struct {
	level string
	msg   string
	attrs map[string]interface{}
}

type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]entry
	fields  []logger.Field
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, entries: &[]entry{}}
}

func (l *recordingLogger) log(level, msg string, fields []logger.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	attrs := make(map[string]interface{})
	for _, f := range append(append([]logger.Field{}, l.fields...), fields...) {
		attrs[f.Key] = f.Value
	}
	*l.entries = append(*l.entries, entry{level: level, msg: msg, attrs: attrs})
}

func (l *recordingLogger) Info(msg string, fields ...logger.Field)  { l.log("info", msg, fields) }
func (l *recordingLogger) Error(msg string, fields ...logger.Field) { l.log("error", msg, fields) }
func (l *recordingLogger) Debug(msg string, fields ...logger.Field) { l.log("debug", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields ...logger.Field)  { l.log("warn", msg, fields) }
func (l *recordingLogger) Sync() error                              { return nil }
func (l *recordingLogger) With(fields ...logger.Field) logger.Logger {
	return &recordingLogger{mu: l.mu, entries: l.entries, fields: append(append([]logger.Field{}, l.fields...), fields...)}
}

func (l *recordingLogger) last() entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return (*l.entries)[len(*l.entries)-1]
}

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRequestLogger_Levels(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		level  string
	}{
		{"api request", "/api/runs", http.StatusOK, "info"},
		{"client error", "/api/runs/nope", http.StatusNotFound, "info"},
		{"liveness poll", "/health/live", http.StatusOK, "debug"},
		{"metrics scrape", "/metrics", http.StatusOK, "debug"},
		{"failing quiet path", "/health/ready", http.StatusServiceUnavailable, "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := newRecordingLogger()
			h := RequestLogger(log, "/health", "/metrics")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			serve(h, tt.path)

			got := log.last()
			assert.Equal(t, tt.level, got.level)
			assert.Equal(t, "HTTP Request", got.msg)
			assert.Equal(t, tt.path, got.attrs["path"])
			assert.Equal(t, tt.status, got.attrs["status"])
		})
	}
}

func TestRequestLogger_PutsLoggerInContext(t *testing.T) {
	log := newRecordingLogger()
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info("Running suite")
		w.WriteHeader(http.StatusAccepted)
	}))

	serve(h, "/api/runs")

	require.Len(t, *log.entries, 2)
	assert.Equal(t, "Running suite", (*log.entries)[0].msg)
	assert.Contains(t, (*log.entries)[0].attrs, "request_id")
}

func TestRecovery(t *testing.T) {
	log := newRecordingLogger()
	h := Recovery(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("checker exploded")
	}))

	w := serve(h, "/api/checks/database_connection")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, panicBody, w.Body.String())

	got := log.last()
	assert.Equal(t, "error", got.level)
	assert.Equal(t, "checker exploded", got.attrs["panic"])
}

func TestRecovery_AbortHandlerRepanics(t *testing.T) {
	h := Recovery(newRecordingLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(h, "/api/runs")
	})
}
