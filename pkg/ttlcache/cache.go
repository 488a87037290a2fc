package ttlcache

import (
	"sync"
	"time"
)

// DefaultTTL is how long entries live unless configured otherwise.
const DefaultTTL = 600 * time.Second

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTLCache is a thread-safe key/value cache with per-entry expiry. An entry
// is visible until its time-to-live elapses, after which Get reports it
// absent and removes it lazily. The cache never evicts on capacity; callers
// are expected to hold a bounded, short-lived working set.
type TTLCache[K comparable, V any] struct {
	mu       sync.Mutex
	items    map[K]entry[V]
	ttl      time.Duration
	now      func() time.Time
	disabled bool
}

type config struct {
	ttl      time.Duration
	now      func() time.Time
	disabled bool
}

// Option configures cache creation.
type Option func(*config)

// WithTTL sets the time-to-live for all entries. Non-positive values are
// ignored and the default of 600 seconds is kept.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock injects the time source, letting tests control expiry without
// sleeping. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// Disabled turns the cache off: Set becomes a no-op and Get always misses.
func Disabled() Option {
	return func(c *config) { c.disabled = true }
}

// New creates a TTL cache.
func New[K comparable, V any](opts ...Option) *TTLCache[K, V] {
	cfg := config{ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TTLCache[K, V]{
		items:    make(map[K]entry[V]),
		ttl:      cfg.ttl,
		now:      cfg.now,
		disabled: cfg.disabled,
	}
}

// Set stores value under key with the current time as insertion time,
// replacing any previous entry.
func (c *TTLCache[K, V]) Set(key K, value V) {
	if c.disabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[V]{value: value, storedAt: c.now()}
}

// Get returns the value stored under key while its TTL has not elapsed.
// The boolean is false when the key was never set, has expired, or the
// cache is disabled.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	var zero V
	if c.disabled {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.items, key)
		return zero, false
	}
	return e.value, true
}

// Expire removes a single key immediately, regardless of its TTL.
func (c *TTLCache[K, V]) Expire(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all entries immediately.
func (c *TTLCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]entry[V])
}

// Len returns the number of unexpired entries.
func (c *TTLCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	now := c.now()
	for key, e := range c.items {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.items, key)
			continue
		}
		n++
	}
	return n
}
