// SPDX-License-Identifier: MIT

package artifact

import (
	"context"
	"sync"
)

// MemoryStore keeps artifacts in process memory. Contents are lost on
// restart; it backs tests and single-shot runs.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Put stores a private copy of data.
func (m *MemoryStore) Put(_ context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[name] = append([]byte(nil), data...)

	return nil
}

// Get returns a copy of the stored artifact.
func (m *MemoryStore) Get(_ context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}

	return append([]byte(nil), data...), nil
}
