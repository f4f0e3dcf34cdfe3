package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-categories/internal/server"
)

// SystemHandler serves the small demo endpoints at the root of the API.
type SystemHandler struct {
	Handler
}

func NewSystemHandler(s *server.Server) *SystemHandler {
	return &SystemHandler{
		Handler: NewHandler(s),
	}
}

type rootResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Root handles GET /.
func (h *SystemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Message: "This is a Json Object",
		Success: true,
	})
}

// Hello handles GET /hello.
func (h *SystemHandler) Hello(c echo.Context) error {
	return c.String(http.StatusOK, "Hello World!")
}

// HelloPost handles POST /post.
func (h *SystemHandler) HelloPost(c echo.Context) error {
	return c.String(http.StatusOK, "Hello Post!")
}
