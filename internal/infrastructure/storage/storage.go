// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned when a key does not exist in the store
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is a minimal key-value port. The cart, promo and order state of the
// storefront are all JSON values under fixed keys, so this is the only
// persistence contract the domain packages depend on.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
