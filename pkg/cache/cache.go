package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a generic key-value store with TTL support.
//
// TTL semantics for Set and SetIfAbsent:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// SetIfAbsent stores the value only when the key is missing.
	// Reports whether the value was stored.
	SetIfAbsent(ctx context.Context, key string, value V, ttl time.Duration) (bool, error)

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}

// Marshaler serializes and deserializes cache values for storage backends
// that require byte representation (e.g., Redis).
type Marshaler[V any] interface {
	Marshal(v V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

type jsonMarshaler[V any] struct{}

func (jsonMarshaler[V]) Marshal(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func (jsonMarshaler[V]) Unmarshal(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

// Loader memoizes computed values in a Cache.
// Concurrent misses for the same key share a single computation.
type Loader[V any] struct {
	cache Cache[V]
	group singleflight.Group
	ttl   time.Duration
}

// NewLoader wraps c. Computed values are stored with ttl.
func NewLoader[V any](c Cache[V], ttl time.Duration) *Loader[V] {
	return &Loader[V]{cache: c, ttl: ttl}
}

// Load returns the cached value for key, or calls fn on a miss.
// Errors from fn are returned and not cached.
func (l *Loader[V]) Load(ctx context.Context, key string, fn func(ctx context.Context) (V, error)) (V, error) {
	if v, err := l.cache.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		val, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		// Best-effort: a failed write only costs a recomputation.
		_ = l.cache.Set(ctx, key, val, l.ttl)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return v.(V), nil
}
