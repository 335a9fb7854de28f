package detect

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/i18nroutes/pkg/cache"
)

// Tracker decides whether a session is on its first access.
type Tracker interface {
	FirstAccess(ctx context.Context, sessionID string) (bool, error)
}

// AlwaysFirst treats every request as a first access.
// This matches server rendering, where each request bootstraps the app.
type AlwaysFirst struct{}

func (AlwaysFirst) FirstAccess(context.Context, string) (bool, error) {
	return true, nil
}

// CacheTracker remembers seen sessions in a cache, so detection runs once
// per session. Any cache.Cache works; use cache.Redis to share state
// between instances.
type CacheTracker struct {
	store  cache.Cache[bool]
	ttl    time.Duration
	prefix string
}

// NewCacheTracker tracks sessions in store for ttl.
// A zero ttl uses the store's default.
func NewCacheTracker(store cache.Cache[bool], ttl time.Duration) *CacheTracker {
	return &CacheTracker{store: store, ttl: ttl, prefix: "first_access:"}
}

// FirstAccess reports true the first time sessionID is seen.
// An empty session id is always a first access.
func (t *CacheTracker) FirstAccess(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return true, nil
	}
	stored, err := t.store.SetIfAbsent(ctx, t.prefix+sessionID, true, t.ttl)
	if err != nil {
		return false, errors.Join(ErrTracker, err)
	}
	return stored, nil
}

// Forget drops sessionID so the next access counts as first again.
func (t *CacheTracker) Forget(ctx context.Context, sessionID string) error {
	if err := t.store.Delete(ctx, t.prefix+sessionID); err != nil {
		return errors.Join(ErrTracker, err)
	}
	return nil
}
