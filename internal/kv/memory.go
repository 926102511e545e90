package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It is lost when the process exits.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
	// Writes counts successful Set calls.
	Writes int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.Writes++
	return nil
}

func (m *Memory) Close() error {
	return nil
}
