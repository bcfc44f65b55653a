package repository

import "context"

// KeyValueStore defines a durable per-profile key-value store.
// Values are primitive string encodings ("true", "300"); callers decide how
// to parse them and treat anything unparsable as absent.
//
//go:generate mockgen -destination=mocks/mock_layout.go -package=mocks github.com/bnema/workbench/internal/domain/repository KeyValueStore
type KeyValueStore interface {
	// Get retrieves a value. found is false when the key does not exist.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set saves or replaces a value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all entries whose key starts with prefix.
	List(ctx context.Context, prefix string) (map[string]string, error)
}
