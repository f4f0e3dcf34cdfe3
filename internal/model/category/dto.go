package category

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/deppfellow/go-categories/internal/validation"
)

var validate = validator.New()

// Field errors for the name rule, shared by the request payloads and the service.
const (
	NameRequiredMessage = "is required"
	NameTooShortMessage = "must be at least 2 characters"
)

// CheckName applies the name rule to an already trimmed name and returns the
// field error message, or "" when the name is acceptable.
func CheckName(name string) string {
	switch {
	case name == "":
		return NameRequiredMessage
	case utf8.RuneCountInString(name) < NameMinLength:
		return NameTooShortMessage
	default:
		return ""
	}
}

// Present returns the trimmed value of an optional field, or "" when omitted.
func Present(field *string) string {
	if field == nil {
		return ""
	}
	return strings.TrimSpace(*field)
}

// Supplied returns an optional field exactly as sent and whether it carries
// any non-blank content. Omitted and whitespace-only fields report false.
func Supplied(field *string) (string, bool) {
	if Present(field) == "" {
		return "", false
	}
	return *field, true
}

func nameErrors(name string) error {
	if msg := CheckName(name); msg != "" {
		return validation.CustomValidationErrors{{Field: "name", Message: msg}}
	}
	return nil
}

// ListCategoriesQuery is the query of GET /api/categories.
// An empty SearchValue lists every category.
type ListCategoriesQuery struct {
	SearchValue string `query:"searchValue"`
}

func (q *ListCategoriesQuery) Validate() error {
	return nil
}

// CategoryIDParam is the {id} path parameter.
type CategoryIDParam struct {
	ID string `param:"id" json:"-" validate:"required,uuid"`
}

func (p *CategoryIDParam) Validate() error {
	return validate.Struct(p)
}

// UUID returns the parsed id. Only call it after Validate succeeded.
func (p *CategoryIDParam) UUID() uuid.UUID {
	return uuid.MustParse(p.ID)
}

type GetCategoryRequest struct {
	CategoryIDParam
}

type DeleteCategoryRequest struct {
	CategoryIDParam
}

// CreateCategoryRequest is the body of POST /api/categories.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r *CreateCategoryRequest) Validate() error {
	return nameErrors(strings.TrimSpace(r.Name))
}

// UpdateCategoryRequest is the request of PUT /api/categories/{id}.
//
// A nil field was omitted by the client. Omitted and blank fields both leave
// the stored value unchanged, so only a non-blank name is checked.
type UpdateCategoryRequest struct {
	CategoryIDParam
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateCategoryRequest) Validate() error {
	if err := r.CategoryIDParam.Validate(); err != nil {
		return err
	}

	if name := Present(r.Name); name != "" {
		return nameErrors(name)
	}
	return nil
}
