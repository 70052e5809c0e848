package docstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps documents in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[Ref][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[Ref][]byte)}
}

func (m *MemoryStore) Upload(ctx context.Context, data []byte) (Ref, error) {
	ref := NewRef(data)
	cp := make([]byte, len(data))
	copy(cp, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[ref] = cp
	return ref, nil
}

func (m *MemoryStore) Fetch(ctx context.Context, ref Ref) ([]byte, error) {
	m.mu.RLock()
	data, ok := m.docs[ref]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	if err := verify(ref, data); err != nil {
		return nil, err
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *MemoryStore) Has(ctx context.Context, ref Ref) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.docs[ref]
	return ok, nil
}
