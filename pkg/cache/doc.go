// Package cache provides a generic key-value Cache with in-memory and Redis
// implementations, plus a Loader that memoizes computed values.
//
// The in-memory cache backs per-build memoization (resolved route patterns,
// page declarations) and single-instance first-access tracking. The Redis
// cache shares first-access state between several server instances.
//
// TTL semantics for Set and SetIfAbsent:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL (1 hour by default)
//   - Negative: item never expires
//
// # Loader
//
// Loader deduplicates concurrent misses with singleflight. Each Loader owns
// its own flight group, so two loaders never share in-flight results even
// when their keys collide:
//
//	l := cache.NewLoader(cache.NewMemory[string](), -1)
//	pattern, err := l.Load(ctx, "/blog/[slug]", func(ctx context.Context) (string, error) {
//	    return segment.Resolve("/blog/[slug]")
//	})
//
// # Redis
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	c := cache.NewRedis[bool](client, nil, cache.WithPrefix("i18n:seen"))
//	first, err := c.SetIfAbsent(ctx, sessionID, true, 24*time.Hour)
package cache
