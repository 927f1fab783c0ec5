// Package interfaces defines the contracts between the news engine and the
// collaborators it is wired to: durable storage, the feed host and logging.
package interfaces

import (
	"context"
	"time"
)

// Store defines the key-value contract used for favorites and for the
// last-good feed document. Implementations can be in-memory, SQLite,
// Redis or Postgres.
//
// Example usage:
//
//	// Persist the favorites list
//	err := store.Set(ctx, "favorites", data, 0)
//
//	// Read it back
//	data, err := store.Get(ctx, "favorites")
//	if errors.IsNotFound(err) {
//		// nothing persisted yet
//	}
type Store interface {
	// Get retrieves a value by key.
	// A missing or expired key returns an error satisfying errors.IsNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	// A ttl of 0 stores the value indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
