package handler

import (
	"github.com/deppfellow/go-categories/internal/server"
	"github.com/deppfellow/go-categories/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Category *CategoryHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	System   *SystemHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Category: NewCategoryHandler(s, services.Category),
		Health:   NewHealthHandler(s, services.Category),
		OpenAPI:  NewOpenAPIHandler(s),
		System:   NewSystemHandler(s),
	}
}
