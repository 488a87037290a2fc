package ttlcache

import "context"

// Store is the byte-oriented cache seam used by the remote access layer.
// Implementations must treat an expired or never-set key as absent, not as
// an error.
type Store interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Expire(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// MemoryStore adapts TTLCache to the Store interface for single-process
// deployments. The context is accepted for interface symmetry and ignored.
type MemoryStore struct {
	cache *TTLCache[string, []byte]
}

// NewMemoryStore creates an in-process Store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{cache: New[string, []byte](opts...)}
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.cache.Set(key, value)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := m.cache.Get(key)
	return value, ok, nil
}

func (m *MemoryStore) Expire(_ context.Context, key string) error {
	m.cache.Expire(key)
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.cache.Clear()
	return nil
}
