// ABOUTME: In-memory store implementation backed by patrickmn/go-cache
// ABOUTME: Provides a process-local key-value store with TTL support and janitor cleanup

package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	coreerrors "newsboard-api/core/errors"
)

// cleanupInterval is how often the janitor purges expired keys
const cleanupInterval = 10 * time.Minute

// MemoryStore implements the Store interface using in-memory storage
type MemoryStore struct {
	items *cache.Cache
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: cache.New(cache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the store
func (c *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, found := c.items.Get(key)
	if !found {
		return nil, coreerrors.KeyNotFound(key)
	}

	// Callers get their own copy
	stored := v.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value with the given TTL; 0 means no expiry
func (c *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl <= 0 {
		expiration = cache.NoExpiration
	}
	c.items.Set(key, valueCopy, expiration)

	return nil
}

// Delete removes a key from the store
func (c *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.items.Delete(key)
	return nil
}

// Len returns the number of stored keys, including expired ones not yet purged
func (c *MemoryStore) Len() int {
	return c.items.ItemCount()
}

// Stats reports the key count in the shape the SQLite store uses
func (c *MemoryStore) Stats() (map[string]interface{}, error) {
	return map[string]interface{}{
		"type":          "memory",
		"total_entries": c.Len(),
	}, nil
}
