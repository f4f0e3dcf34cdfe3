// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-categories/internal/handler"
	"github.com/deppfellow/go-categories/internal/middleware"
	"github.com/deppfellow/go-categories/internal/server"
)

// NewRouter builds the Echo instance with every middleware and route.
//
// Order matters: the request id must exist before the tracing and context
// middlewares read it, and the context logger must exist before the request
// logger writes through it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(middlewares.Global.HTTPSRedirect())

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h, s.Config.Observability.IsProduction())

	api := router.Group("/api")
	registerCategoryRoutes(api, h)

	return router
}
