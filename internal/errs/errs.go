// Package errs defines the error shapes returned to API clients.
//
// Every failure that reaches the HTTP layer is converted into an *HTTPError
// so clients always receive the same JSON structure: a machine readable code,
// a human readable message, the status, and optional field-level errors.
package errs
