package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deppfellow/go-categories/internal/model/category"
)

// ErrCategoryNotFound is returned for ids absent from the collection.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository is an insertion-ordered in-memory collection of categories.
//
// items gives O(1) lookup by id, order keeps the listing order. Both are only
// touched with mu held. Callers always receive copies, never the stored value.
type CategoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*category.Category
	order []uuid.UUID

	newID func() uuid.UUID
	now   func() time.Time
	log   *zerolog.Logger
}

// NewCategoryRepository returns an empty repository.
func NewCategoryRepository(logger *zerolog.Logger) *CategoryRepository {
	return &CategoryRepository{
		items: make(map[uuid.UUID]*category.Category),
		newID: uuid.New,
		now:   time.Now,
		log:   logger,
	}
}

// List returns the categories accepted by match in insertion order.
// A nil match returns every category.
func (r *CategoryRepository) List(ctx context.Context, match func(category.Category) bool) []category.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]category.Category, 0, len(r.order))
	for _, id := range r.order {
		c := *r.items[id]
		if match == nil || match(c) {
			result = append(result, c)
		}
	}

	return result
}

// Get returns the category with the given id.
func (r *CategoryRepository) Get(ctx context.Context, id uuid.UUID) (category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return category.Category{}, ErrCategoryNotFound
	}
	return *c, nil
}

// Create assigns a fresh id and creation time and stores the category.
func (r *CategoryRepository) Create(ctx context.Context, name, description string) category.Category {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for {
		if _, taken := r.items[id]; !taken {
			break
		}
		r.log.Warn().Str("category_id", id.String()).Msg("generated category id already taken, regenerating")
		id = r.newID()
	}

	c := &category.Category{
		ID:          id,
		Name:        name,
		Description: description,
		CreatedAt:   r.now().UTC(),
	}

	r.items[id] = c
	r.order = append(r.order, id)

	return *c
}

// Update runs mutate on the stored category while holding the write lock and
// returns the result. mutate must not retain the pointer.
func (r *CategoryRepository) Update(ctx context.Context, id uuid.UUID, mutate func(*category.Category)) (category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return category.Category{}, ErrCategoryNotFound
	}

	// Work on a copy so the identity fields can't be changed by mutate.
	updated := *c
	mutate(&updated)
	updated.ID = c.ID
	updated.CreatedAt = c.CreatedAt

	*c = updated
	return updated, nil
}

// Delete removes the category and returns its last state.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) (category.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return category.Category{}, ErrCategoryNotFound
	}

	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return *c, nil
}

// Count returns the number of stored categories.
func (r *CategoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}
