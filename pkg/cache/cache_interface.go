package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when the backing cache cannot be reached.
var ErrUnavailable = errors.New("cache unavailable")

// Cache is the contract of the cache layer.
// Implementations: Redis (production) and an in-process map (fallback, tests).
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found=false on a miss, dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value (JSON encoded) with a TTL; ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
}
