// Package category holds the Category entity and the request payloads of the
// category endpoints.
package category

import (
	"time"

	"github.com/google/uuid"
)

// NameMinLength is the shortest accepted category name, counted in characters.
const NameMinLength = 2

// Category is the only entity of the service.
//
// ID and CreatedAt are assigned once on creation and never change.
type Category struct {
	ID          uuid.UUID `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Location is the resource path of the category.
func (c Category) Location() string {
	return "/api/categories/" + c.ID.String()
}

// Event actions published after a successful mutation.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// Event describes a committed change to a category.
type Event struct {
	Action     string    `json:"action"`
	Category   Category  `json:"category"`
	OccurredAt time.Time `json:"occurredAt"`
}
