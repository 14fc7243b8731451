package store

import (
	"Gamehub/models"
	"context"
	"sync"
)

// MemoryStore keeps the encoded document in process memory.
// Each Load returns an independent copy.
type MemoryStore struct {
	mu      sync.Mutex
	data    []byte
	version int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	snap, err := Decode(m.data)
	if err != nil {
		return nil, err
	}
	snap.Version = m.version
	return snap, nil
}

func (m *MemoryStore) Save(ctx context.Context, snap *models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if snap.Version != m.version {
		return staleVersion(snap.Version, m.version)
	}
	next := *snap
	next.Version = m.version + 1
	data, err := Encode(&next)
	if err != nil {
		return err
	}
	m.data = data
	m.version = next.Version
	snap.Version = next.Version
	return nil
}
