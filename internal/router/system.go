package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-categories/internal/handler"
)

// registerSystemRoutes registers the endpoints that are not part of the
// category API: health, the root demo routes and, outside production, the
// OpenAPI docs with their static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, production bool) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/", h.System.Root)
	r.GET("/hello", h.System.Hello)
	r.POST("/post", h.System.HelloPost)

	if production {
		return
	}

	r.Static("/static", handler.StaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
