package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-categories/internal/config"
	"github.com/deppfellow/go-categories/internal/repository"
	"github.com/deppfellow/go-categories/internal/server"
	"github.com/deppfellow/go-categories/internal/service"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	logger := zerolog.Nop()
	return &server.Server{
		Config: config.DefaultConfig(),
		Logger: &logger,
	}
}

func newTestHandlers(s *server.Server) *Handlers {
	return NewHandlers(s, service.NewServices(s, repository.NewRepositories(s)))
}

func serve(h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestCheckHealth_RedisUnreachable(t *testing.T) {
	s := newTestServer(t)
	s.Config.Observability.HealthChecks.Timeout = 500 * time.Millisecond
	s.Redis = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = s.Redis.Close() })

	h := newTestHandlers(s)
	rec := serve(h.Health.CheckHealth, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body["status"])

	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "unhealthy", checks["redis"].(map[string]interface{})["status"])
	assert.Equal(t, "healthy", checks["categories"].(map[string]interface{})["status"])
}

func TestCheckHealth_RedisCheckDisabled(t *testing.T) {
	s := newTestServer(t)
	s.Config.Observability.HealthChecks.Checks = nil
	s.Redis = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = s.Redis.Close() })

	h := newTestHandlers(s)
	rec := serve(h.Health.CheckHealth, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServeOpenAPIUI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, StaticDir), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, StaticDir, "openapi.html"), []byte("<html>docs</html>"), 0o600))
	t.Chdir(dir)

	h := newTestHandlers(newTestServer(t))
	rec := serve(h.OpenAPI.ServeOpenAPIUI, httptest.NewRequest(http.MethodGet, "/docs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html>docs</html>", rec.Body.String())
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}

func TestServeOpenAPIUI_MissingTemplate(t *testing.T) {
	t.Chdir(t.TempDir())

	h := newTestHandlers(newTestServer(t))
	err := h.OpenAPI.ServeOpenAPIUI(echo.New().NewContext(
		httptest.NewRequest(http.MethodGet, "/docs", nil),
		httptest.NewRecorder(),
	))

	assert.ErrorContains(t, err, "failed to read OpenAPI UI template")
}

func TestCreateCategory_SetsLocation(t *testing.T) {
	h := newTestHandlers(newTestServer(t))

	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":"Books"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := serve(h.Category.CreateCategory, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		CategoryID string `json:"categoryId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/api/categories/"+body.CategoryID, rec.Header().Get(echo.HeaderLocation))
}
