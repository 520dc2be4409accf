// ABOUTME: In-memory settings store for ephemeral sessions and tests
// ABOUTME: Backed by go-cache with no expiration; values last for the process lifetime

package memory

import (
	"context"
	"errors"

	gocache "github.com/patrickmn/go-cache"

	"clipper-app-api/core/interfaces"
)

// MemoryStore implements the Store interface using in-memory storage
type MemoryStore struct {
	items *gocache.Cache
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a value from the store
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if key == "" {
		return "", errors.New("key cannot be empty")
	}

	value, ok := s.items.Get(key)
	if !ok {
		return "", interfaces.ErrNotFound
	}
	return value.(string), nil
}

// Set stores a value, replacing any previous value for the key
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if key == "" {
		return errors.New("key cannot be empty")
	}

	s.items.Set(key, value, gocache.NoExpiration)
	return nil
}

// Delete removes a key from the store
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.items.Delete(key)
	return nil
}
