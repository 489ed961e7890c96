package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-prioritizer/internal/middleware"
	"task-prioritizer/pkg/log"
)

type mockLogger struct {
	infos, warns, errors int
}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   { m.infos++ }
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   { m.infos++ }
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   { m.warns++ }
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   { m.warns++ }
func (m *mockLogger) Error(ctx context.Context, args ...any)                  { m.errors++ }
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  { m.errors++ }
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type observation struct {
	method, route string
	status        int
}

type mockRecorder struct {
	seen []observation
}

func (m *mockRecorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.seen = append(m.seen, observation{method, route, status})
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	return r
}

func serve(r http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(&mockLogger{}, middleware.Config{})

	var seen string
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("generates an id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", nil)

		id := w.Header().Get(middleware.HeaderRequestID)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("keeps the client id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", map[string]string{middleware.HeaderRequestID: "abc-123"})

		assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderRequestID))
		assert.Equal(t, "abc-123", seen)
	})
}

func TestCORS(t *testing.T) {
	t.Run("allowed origin", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, middleware.Config{
			CORS: middleware.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		})
		w := serve(newEngine(mw.CORS()), http.MethodGet, "/ping", map[string]string{"Origin": "http://localhost:5173"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, middleware.Config{
			CORS: middleware.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		})
		w := serve(newEngine(mw.CORS()), http.MethodGet, "/ping", map[string]string{"Origin": "http://evil.example"})

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, middleware.Config{
			CORS: middleware.CORSConfig{AllowedOrigins: []string{"*"}},
		})
		w := serve(newEngine(mw.CORS()), http.MethodGet, "/ping", map[string]string{"Origin": "http://any.example"})

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, middleware.Config{})
		w := serve(newEngine(mw.CORS()), http.MethodOptions, "/ping", map[string]string{"Origin": "http://localhost:5173"})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, middleware.Config{})
		r := newEngine(mw.RateLimit())

		for i := 0; i < 20; i++ {
			require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ping", nil).Code)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		l := &mockLogger{}
		mw := middleware.New(l, middleware.Config{
			RateLimit: middleware.RateLimitConfig{Enabled: true, RequestsPerMin: 10},
		})
		r := newEngine(mw.RateLimit())

		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ping", nil).Code)
		w := serve(r, http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Rate limit exceeded")
		assert.Equal(t, 1, l.warns)
	})
}

func TestMetrics(t *testing.T) {
	rec := &mockRecorder{}
	mw := middleware.New(&mockLogger{}, middleware.Config{Recorder: rec})
	r := newEngine(mw.Metrics())

	serve(r, http.MethodGet, "/ping", nil)
	serve(r, http.MethodGet, "/items/42", nil)
	serve(r, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, []observation{
		{http.MethodGet, "/ping", http.StatusOK},
		{http.MethodGet, "/items/:id", http.StatusNotFound},
		{http.MethodGet, "unmatched", http.StatusNotFound},
	}, rec.seen)
}

func TestAccessLog(t *testing.T) {
	l := &mockLogger{}
	mw := middleware.New(l, middleware.Config{})
	r := newEngine(mw.AccessLog())

	serve(r, http.MethodGet, "/ping?x=1", nil)
	serve(r, http.MethodGet, "/items/1", nil)

	assert.Equal(t, 1, l.infos)
	assert.Equal(t, 1, l.warns)
	assert.Zero(t, l.errors)
}
