package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-categories/internal/model/category"
	"github.com/deppfellow/go-categories/internal/server"
	"github.com/deppfellow/go-categories/internal/service"
)

// CategoryHandler serves /api/categories.
type CategoryHandler struct {
	Handler
	categoryService *service.CategoryService
}

func NewCategoryHandler(s *server.Server, categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Handler:         NewHandler(s),
		categoryService: categoryService,
	}
}

// ListCategories handles GET /api/categories?searchValue=...
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, query *category.ListCategoriesQuery) ([]category.Category, error) {
			return h.categoryService.List(c.Request().Context(), query.SearchValue), nil
		},
		http.StatusOK,
		&category.ListCategoriesQuery{},
	)(c)
}

// GetCategory handles GET /api/categories/:id.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *category.GetCategoryRequest) (category.Category, error) {
			return h.categoryService.Get(c.Request().Context(), req.UUID())
		},
		http.StatusOK,
		&category.GetCategoryRequest{},
	)(c)
}

// CreateCategory handles POST /api/categories. The response carries the
// Location of the new category.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, req *category.CreateCategoryRequest) (category.Category, error) {
			created, err := h.categoryService.Create(c.Request().Context(), req.Name, req.Description)
			if err != nil {
				return category.Category{}, err
			}

			c.Response().Header().Set(echo.HeaderLocation, created.Location())
			return created, nil
		},
		http.StatusCreated,
		&category.CreateCategoryRequest{},
	)(c)
}

// UpdateCategory handles PUT /api/categories/:id.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, req *category.UpdateCategoryRequest) error {
			_, err := h.categoryService.Update(c.Request().Context(), req.UUID(), req.Name, req.Description)
			return err
		},
		http.StatusNoContent,
		&category.UpdateCategoryRequest{},
	)(c)
}

// DeleteCategory handles DELETE /api/categories/:id.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, req *category.DeleteCategoryRequest) error {
			return h.categoryService.Delete(c.Request().Context(), req.UUID())
		},
		http.StatusNoContent,
		&category.DeleteCategoryRequest{},
	)(c)
}
