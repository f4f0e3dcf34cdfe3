package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-categories/internal/handler"
)

func registerCategoryRoutes(r *echo.Group, h *handler.Handlers) {
	categories := r.Group("/categories")

	categories.GET("", h.Category.ListCategories)
	categories.POST("", h.Category.CreateCategory)
	categories.GET("/:id", h.Category.GetCategory)
	categories.PUT("/:id", h.Category.UpdateCategory)
	categories.DELETE("/:id", h.Category.DeleteCategory)
}
