// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives request
// data from handlers, enforces the domain rules, and calls repositories.
package service
