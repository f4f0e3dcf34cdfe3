package repository

import (
	"github.com/deppfellow/go-categories/internal/server"
)

// Repositories groups every repository so services receive one value.
type Repositories struct {
	Category *CategoryRepository
}

// NewRepositories constructs the repository container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Category: NewCategoryRepository(s.Logger),
	}
}
