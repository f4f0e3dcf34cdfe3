// Package repository holds the data access layer.
//
// Categories live in process memory: the repository is the only owner of
// the collection and guards it with a single lock.
package repository
