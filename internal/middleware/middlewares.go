package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/go-categories/internal/server"
)

// Middlewares groups every middleware component so the router receives one value.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers, HTTPS
	// redirect and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic and adds request attributes to transactions.
	Tracing *TracingMiddleware

	// RateLimit limits requests per client when configured.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs every middleware from the application container.
// Without a New Relic application the tracing middleware is a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
