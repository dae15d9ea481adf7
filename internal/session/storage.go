package session

import "sync"

// Storage is the browser-side key/value space the session lives in.
type Storage interface {
	Get(key string) (string, bool)
	Put(entries map[string]string) error
	Clear(keys ...string) error
}

// MemoryStorage keeps entries in a map. It survives as long as the value does,
// which lets tests play a "previous visit" into a new Store.
type MemoryStorage struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: map[string]string{}}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *MemoryStorage) Put(entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range entries {
		m.entries[k] = v
	}
	return nil
}

func (m *MemoryStorage) Clear(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}
