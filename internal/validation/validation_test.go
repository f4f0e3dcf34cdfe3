package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-categories/internal/errs"
)

type renameRequest struct {
	ID   string `param:"id" validate:"required,uuid"`
	Name string `json:"name" validate:"required,min=2"`
}

func (r *renameRequest) Validate() error {
	return validator.New().Struct(r)
}

type customRequest struct {
	Name string `json:"name"`
}

func (r *customRequest) Validate() error {
	if r.Name == "reserved" {
		return CustomValidationErrors{{Field: "name", Message: "is reserved"}}
	}
	return nil
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	c := newContext(http.MethodPut, `{"name":"Books"}`)
	c.SetParamNames("id")
	c.SetParamValues("f6158254-99bb-4d1c-81cb-91d9720e759a")

	req := &renameRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, "Books", req.Name)
	assert.Equal(t, "f6158254-99bb-4d1c-81cb-91d9720e759a", req.ID)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &customRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_TagErrors(t *testing.T) {
	c := newContext(http.MethodPut, `{"name":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	httpErr := requireHTTPError(t, BindAndValidate(c, &renameRequest{}))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.True(t, httpErr.Override)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "id", Error: "must be a valid UUID"},
		{Field: "name", Error: "must be at least 2 characters"},
	}, httpErr.Errors)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	c := newContext(http.MethodPost, `{"name":"reserved"}`)

	httpErr := requireHTTPError(t, BindAndValidate(c, &customRequest{}))
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is reserved"}}, httpErr.Errors)
}
