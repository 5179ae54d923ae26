package driven

import "context"

// KeyValueStore persists opaque values under string keys.
// Keys are tab identifiers plus the reserved "options" key.
type KeyValueStore interface {
	// Get returns the stored value.
	// Returns domain.ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores or replaces the value for a key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every stored key in ascending order.
	Keys(ctx context.Context) ([]string, error)
}
