package catalog

import (
	"container/list"
	"context"
	"sync"
)

// Result is a memoized resolution outcome. Found is false for "no match",
// which is cached like any other outcome.
type Result struct {
	Value string `json:"value"`
	Found bool   `json:"found"`
}

// Store memoizes resolution results.
type Store interface {
	// Get returns ErrNotFound when the key has no stored result.
	Get(ctx context.Context, key string) (Result, error)

	// Set stores res under key.
	Set(ctx context.Context, key string, res Result) error
}

type memoryEntry struct {
	key string
	res Result
}

// MemoryStore is an in-process Store with least-recently-used eviction.
// Tables never change after the catalog is built, so entries do not expire.
type MemoryStore struct {
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
	max      int
}

// NewMemoryStore returns a store holding at most maxEntries results.
// Zero or a negative value means unlimited.
func NewMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		max:      max(maxEntries, 0),
	}
}

// Get implements Store. A hit marks the entry as recently used.
func (m *MemoryStore) Get(_ context.Context, key string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		return Result{}, ErrNotFound
	}
	m.eviction.MoveToFront(elem)
	return elem.Value.(*memoryEntry).res, nil
}

// Set implements Store.
func (m *MemoryStore) Set(_ context.Context, key string, res Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		elem.Value.(*memoryEntry).res = res
		m.eviction.MoveToFront(elem)
		return nil
	}

	if m.max > 0 && m.eviction.Len() >= m.max {
		if oldest := m.eviction.Back(); oldest != nil {
			m.eviction.Remove(oldest)
			delete(m.items, oldest.Value.(*memoryEntry).key)
		}
	}

	m.items[key] = m.eviction.PushFront(&memoryEntry{key: key, res: res})
	return nil
}

// Len returns the number of stored results.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eviction.Len()
}

var _ Store = (*MemoryStore)(nil)
