package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOption configures the Redis cache.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix     string
	defaultTTL time.Duration
}

// WithRedisDefaultTTL sets the expiration used when Set is called with a zero TTL.
// Default: 1 hour.
func WithRedisDefaultTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.defaultTTL = d
	}
}

// WithPrefix namespaces all keys as "{prefix}:{key}".
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		o.prefix = prefix
	}
}

// Redis is a cache backed by Redis.
// Values are serialized with the configured Marshaler (default: JSON).
type Redis[V any] struct {
	client    redis.UniversalClient
	marshaler Marshaler[V]
	opts      redisOptions
}

// NewRedis creates a Redis-backed cache. A nil Marshaler selects JSON.
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	seen := cache.NewRedis[bool](client, nil, cache.WithPrefix("i18n:seen"))
func NewRedis[V any](client redis.UniversalClient, m Marshaler[V], opts ...RedisOption) *Redis[V] {
	o := redisOptions{defaultTTL: time.Hour}
	for _, opt := range opts {
		opt(&o)
	}

	if m == nil {
		m = jsonMarshaler[V]{}
	}

	return &Redis[V]{client: client, marshaler: m, opts: o}
}

// Get retrieves a value by key. Returns ErrNotFound if the key does not exist.
func (r *Redis[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, ErrNotFound
		}
		return zero, err
	}

	return r.marshaler.Unmarshal(data)
}

// Set stores a value with the given TTL.
func (r *Redis[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := r.marshaler.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(key), data, r.ttl(ttl)).Err()
}

// SetIfAbsent stores the value with SET NX.
func (r *Redis[V]) SetIfAbsent(ctx context.Context, key string, value V, ttl time.Duration) (bool, error) {
	data, err := r.marshaler.Marshal(value)
	if err != nil {
		return false, err
	}
	return r.client.SetNX(ctx, r.key(key), data, r.ttl(ttl)).Result()
}

// Delete removes a key.
func (r *Redis[V]) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// Close is a no-op; the client lifecycle belongs to the caller.
func (r *Redis[V]) Close() error {
	return nil
}

func (r *Redis[V]) key(key string) string {
	if r.opts.prefix == "" {
		return key
	}
	return r.opts.prefix + ":" + key
}

// ttl maps cache TTL semantics onto Redis, where 0 means no expiration.
func (r *Redis[V]) ttl(ttl time.Duration) time.Duration {
	if ttl == 0 {
		ttl = r.opts.defaultTTL
	}
	return max(ttl, 0)
}

var _ Cache[any] = (*Redis[any])(nil)
