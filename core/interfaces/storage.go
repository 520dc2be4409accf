// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when a key has never been set or has
// been deleted.
var ErrNotFound = errors.New("key not found")

// Store defines the interface for the persisted key-value settings store.
// Implementations can be SQLite-backed, in-memory, or any other string
// key-value storage. Writes are last-write-wins; there are no transactions.
type Store interface {
	// Get retrieves the value stored under key. Returns ErrNotFound when the
	// key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the value stored under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
