package service

import (
	"github.com/deppfellow/go-categories/internal/lib/job"
	"github.com/deppfellow/go-categories/internal/repository"
	"github.com/deppfellow/go-categories/internal/server"
)

// Services groups every service so handlers receive one value.
type Services struct {
	Category *CategoryService
	Job      *job.JobService
}

// NewServices wires services to their repositories. The job service doubles
// as the category event publisher when Redis is configured.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	var publisher EventPublisher
	if s.Job != nil {
		publisher = s.Job
	}

	return &Services{
		Category: NewCategoryService(repos.Category, publisher),
		Job:      s.Job,
	}
}
