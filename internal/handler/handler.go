// Package handler is the HTTP layer that sits right after the router.
//
// Handlers bind and validate requests through the validation package, call
// the service layer and write the response. The shared pipeline in base.go
// adds logging, New Relic attributes and timing to every typed handler.
package handler
