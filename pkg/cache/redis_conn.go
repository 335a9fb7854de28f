package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnOption configures a Redis connection opened by OpenRedis.
type ConnOption func(*connOptions)

type connOptions struct {
	poolSize      int
	minIdleConns  int
	retryAttempts int
	retryInterval time.Duration
	readTimeout   time.Duration
	writeTimeout  time.Duration
	dialTimeout   time.Duration
}

// WithPoolSize sets the maximum number of connections in the pool.
// Default: 10
func WithPoolSize(n int) ConnOption {
	return func(o *connOptions) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithRetry configures connection retry behavior.
// Default: 3 attempts, 2 second base interval with linear backoff.
func WithRetry(attempts int, interval time.Duration) ConnOption {
	return func(o *connOptions) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// WithTimeouts sets the dial, read and write timeouts.
// Default: 5s dial, 3s read and write. Zero values keep the default.
func WithTimeouts(dial, read, write time.Duration) ConnOption {
	return func(o *connOptions) {
		if dial > 0 {
			o.dialTimeout = dial
		}
		if read > 0 {
			o.readTimeout = read
		}
		if write > 0 {
			o.writeTimeout = write
		}
	}
}

// OpenRedis connects to the Redis server at url, retrying until it answers
// a ping. Supports redis:// and rediss:// (TLS) URLs.
//
//	client, err := cache.OpenRedis(ctx, os.Getenv("REDIS_URL"))
//	seen := cache.NewRedis[bool](client, nil, cache.WithPrefix("i18n"))
func OpenRedis(ctx context.Context, url string, opts ...ConnOption) (redis.UniversalClient, error) {
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrInvalidRedisURL
	}

	o := &connOptions{
		poolSize:      10,
		minIdleConns:  2,
		retryAttempts: 3,
		retryInterval: 2 * time.Second,
		readTimeout:   3 * time.Second,
		writeTimeout:  3 * time.Second,
		dialTimeout:   5 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}

	ro, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}
	ro.PoolSize = o.poolSize
	ro.MinIdleConns = o.minIdleConns
	ro.ReadTimeout = o.readTimeout
	ro.WriteTimeout = o.writeTimeout
	ro.DialTimeout = o.dialTimeout

	var lastErr error
	for i := range max(o.retryAttempts, 1) {
		client := redis.NewClient(ro)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisUnavailable, ctx.Err())
		case <-time.After(time.Duration(i+1) * o.retryInterval):
		}
	}
	return nil, errors.Join(ErrRedisUnavailable, lastErr)
}

// RedisHealthcheck reports whether client answers a ping.
func RedisHealthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrRedisUnavailable
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrRedisUnavailable, err)
		}
		return nil
	}
}
