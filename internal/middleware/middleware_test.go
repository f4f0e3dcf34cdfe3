package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-categories/internal/config"
	"github.com/deppfellow/go-categories/internal/errs"
	"github.com/deppfellow/go-categories/internal/server"
)

func newTestServer(t *testing.T, out *bytes.Buffer) *server.Server {
	t.Helper()
	logger := zerolog.New(out)
	return &server.Server{
		Config: config.DefaultConfig(),
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	mw := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(RequestID(), mw.Tracing.NewRelicMiddleware(), mw.Tracing.EnhanceTracing(), mw.ContextEnhancer.EnhanceContext(), mw.RateLimit.Limit())
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestGlobalErrorHandler_HTTPError(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(newTestServer(t, &logs))
	e.GET("/fail", func(c echo.Context) error {
		return fmt.Errorf("wrapped: %w", errs.ValidationError("name", "is required"))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "BAD_REQUEST", body.Code)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, body.Errors)
	assert.Contains(t, logs.String(), `"request_id"`)
}

func TestGlobalErrorHandler_UnknownRoute(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(newTestServer(t, &logs))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestGlobalErrorHandler_UnexpectedErrorIsHidden(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(newTestServer(t, &logs))
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("secret internals")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
	assert.NotContains(t, rec.Body.String(), "secret internals")
	assert.Contains(t, logs.String(), "secret internals")
}

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, &logs)
	s.Config.Server.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
	e := newTestEcho(s)
	e.GET("/limited", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/status", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, logs.String(), "rate limit exceeded")

	// the health endpoint is exempt
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}
