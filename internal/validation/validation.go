// Package validation binds request data and validates it.
//
// Payloads implement Validatable, usually by running go-playground/validator
// over their struct tags. Failures are converted into a 400 *errs.HTTPError
// carrying one FieldError per offending field.
package validation
