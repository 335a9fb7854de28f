package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
	key       string
}

func (e *entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryOption configures the in-memory cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	maxEntries      int
}

// WithDefaultTTL sets the expiration used when Set is called with a zero TTL.
// Default: 1 hour.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.defaultTTL = d
	}
}

// WithCleanupInterval sets how often the janitor removes expired entries.
// Zero disables the janitor. Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

// WithMaxEntries bounds the cache size; the least recently used entry
// is evicted when the limit is reached. Zero means unlimited.
func WithMaxEntries(n int) MemoryOption {
	return func(o *memoryOptions) {
		o.maxEntries = n
	}
}

// Memory is an in-memory cache with TTL expiration and optional LRU eviction.
type Memory[V any] struct {
	items  map[string]*list.Element
	lru    *list.List
	opts   memoryOptions
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewMemory creates a new in-memory cache.
//
//	c := cache.NewMemory[bool](
//	    cache.WithDefaultTTL(24 * time.Hour),
//	    cache.WithMaxEntries(100_000),
//	)
//	defer c.Close()
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := memoryOptions{
		defaultTTL:      time.Hour,
		cleanupInterval: time.Minute,
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Memory[V]{
		items: make(map[string]*list.Element),
		lru:   list.New(),
		opts:  o,
		done:  make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Get retrieves a value by key and marks it as recently used.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	e, ok := m.lookup(key, time.Now())
	if !ok {
		return zero, ErrNotFound
	}
	return e.value, nil
}

// Set stores a value with the given TTL.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.store(key, value, ttl)
	return nil
}

// SetIfAbsent stores the value only when key is missing or expired.
func (m *Memory[V]) SetIfAbsent(_ context.Context, key string, value V, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false, ErrClosed
	}

	if _, ok := m.lookup(key, time.Now()); ok {
		return false, nil
	}

	m.store(key, value, ttl)
	return true, nil
}

// Delete removes a key from the cache.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if elem, ok := m.items[key]; ok {
		m.remove(elem)
	}
	return nil
}

// Len returns the number of entries, including expired ones not yet collected.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the janitor. Close is idempotent.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	close(m.done)
	return nil
}

// lookup returns a live entry and refreshes its LRU position.
// Caller must hold the mutex.
func (m *Memory[V]) lookup(key string, now time.Time) (*entry[V], bool) {
	elem, ok := m.items[key]
	if !ok {
		return nil, false
	}

	e := elem.Value.(*entry[V])
	if e.expired(now) {
		m.remove(elem)
		return nil, false
	}

	m.lru.MoveToFront(elem)
	return e, true
}

// store inserts or replaces an entry. Caller must hold the mutex.
func (m *Memory[V]) store(key string, value V, ttl time.Duration) {
	if ttl == 0 {
		ttl = m.opts.defaultTTL
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if elem, ok := m.items[key]; ok {
		e := elem.Value.(*entry[V])
		e.value = value
		e.expiresAt = expiresAt
		m.lru.MoveToFront(elem)
		return
	}

	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		if oldest := m.lru.Back(); oldest != nil {
			m.remove(oldest)
		}
	}

	m.items[key] = m.lru.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
}

// remove drops an element. Caller must hold the mutex.
func (m *Memory[V]) remove(elem *list.Element) {
	m.lru.Remove(elem)
	delete(m.items, elem.Value.(*entry[V]).key)
}

func (m *Memory[V]) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.mu.Lock()
			for elem := m.lru.Back(); elem != nil; {
				prev := elem.Prev()
				if elem.Value.(*entry[V]).expired(now) {
					m.remove(elem)
				}
				elem = prev
			}
			m.mu.Unlock()
		}
	}
}

var _ Cache[any] = (*Memory[any])(nil)
