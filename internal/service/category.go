package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/deppfellow/go-categories/internal/errs"
	"github.com/deppfellow/go-categories/internal/model/category"
	"github.com/deppfellow/go-categories/internal/repository"
)

// EventPublisher receives an event after every committed category change.
type EventPublisher interface {
	PublishCategoryEvent(ctx context.Context, event category.Event) error
}

var categoryNotFoundCode = "CATEGORY_NOT_FOUND"

func newCategoryNotFoundError() *errs.HTTPError {
	return errs.NewNotFoundError("Category with this id does not exist", true, &categoryNotFoundCode)
}

// CategoryService implements the category operations on top of the
// in-memory repository.
type CategoryService struct {
	repo      *repository.CategoryRepository
	publisher EventPublisher
	now       func() time.Time
}

// NewCategoryService returns a CategoryService. publisher may be nil.
func NewCategoryService(repo *repository.CategoryRepository, publisher EventPublisher) *CategoryService {
	return &CategoryService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// List returns the categories whose name contains search, ignoring case,
// in insertion order. An empty search returns every category; whitespace is
// matched like any other text.
func (s *CategoryService) List(ctx context.Context, search string) []category.Category {
	if search == "" {
		return s.repo.List(ctx, nil)
	}

	// A Caser is not safe for concurrent use.
	fold := cases.Fold()
	needle := fold.String(search)

	return s.repo.List(ctx, func(c category.Category) bool {
		return strings.Contains(fold.String(c.Name), needle)
	})
}

// Get returns a single category.
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (category.Category, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return category.Category{}, s.mapError(err)
	}
	return c, nil
}

// Create validates and stores a new category. The name is trimmed; the
// description is stored as sent and may be nil.
func (s *CategoryService) Create(ctx context.Context, name string, description *string) (category.Category, error) {
	name = strings.TrimSpace(name)
	if msg := category.CheckName(name); msg != "" {
		return category.Category{}, errs.ValidationError("name", msg)
	}

	desc, _ := category.Supplied(description)
	created := s.repo.Create(ctx, name, desc)

	zerolog.Ctx(ctx).Info().
		Str("category_id", created.ID.String()).
		Msg("category created")

	s.publish(ctx, category.EventCreated, created)

	return created, nil
}

// Update changes the name and/or description of a category.
//
// nil or blank fields are left unchanged. A new name is trimmed, a new
// description is stored as sent. The name is validated before the
// store is touched, so a rejected update never mutates anything.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, name, description *string) (category.Category, error) {
	newName := category.Present(name)
	if newName != "" {
		if msg := category.CheckName(newName); msg != "" {
			return category.Category{}, errs.ValidationError("name", msg)
		}
	}
	newDescription, replaceDescription := category.Supplied(description)

	updated, err := s.repo.Update(ctx, id, func(c *category.Category) {
		if newName != "" {
			c.Name = newName
		}
		if replaceDescription {
			c.Description = newDescription
		}
	})
	if err != nil {
		return category.Category{}, s.mapError(err)
	}

	zerolog.Ctx(ctx).Info().
		Str("category_id", id.String()).
		Bool("name_changed", newName != "").
		Bool("description_changed", replaceDescription).
		Msg("category updated")

	s.publish(ctx, category.EventUpdated, updated)

	return updated, nil
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.mapError(err)
	}

	zerolog.Ctx(ctx).Info().
		Str("category_id", id.String()).
		Msg("category deleted")

	s.publish(ctx, category.EventDeleted, deleted)

	return nil
}

// Count returns the number of stored categories.
func (s *CategoryService) Count() int {
	return s.repo.Count()
}

func (s *CategoryService) mapError(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return newCategoryNotFoundError()
	}
	return err
}

// publish hands the event to the publisher. The change is already committed,
// so a failure is only logged.
func (s *CategoryService) publish(ctx context.Context, action string, c category.Category) {
	if s.publisher == nil {
		return
	}

	event := category.Event{
		Action:     action,
		Category:   c,
		OccurredAt: s.now().UTC(),
	}

	if err := s.publisher.PublishCategoryEvent(ctx, event); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("action", action).
			Str("category_id", c.ID.String()).
			Msg("failed to publish category event")
	}
}
