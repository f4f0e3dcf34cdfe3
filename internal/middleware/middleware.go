// Package middleware holds the global and route-level Echo middleware:
// request ids, the request-scoped logger, New Relic tracing, request
// logging, rate limiting, CORS, secure headers, HTTPS redirection, panic
// recovery and the global error handler.
package middleware
