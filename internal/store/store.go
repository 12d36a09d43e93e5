// Package store provides the key-value cache abstraction used for public
// content reads. A memory-backed implementation is the default; Redis is
// used when REDIS_DSN is configured.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("store: key not found")

// Store is a key-value store with TTL support.
type Store interface {
	// Set stores a key-value pair, with 0 ttl meaning no expiry.
	Set(key string, value []byte, ttl time.Duration) error

	// Get retrieves a value by its key, returning ErrNotFound when absent
	// or expired.
	Get(key string) ([]byte, error)

	// Delete removes a value by its key. Deleting a missing key is not an
	// error.
	Delete(key string) error

	// Del removes multiple values by their keys.
	Del(keys ...string) error

	// Exists checks if a key exists.
	Exists(key string) (bool, error)

	// Clear removes all keys.
	Clear() error

	// Close releases any resources held by the store.
	Close() error
}
