package tokenstore

import "sync"

// Memory is an in-process Store. The zero value is ready to use.
type Memory struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Access() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.access
}

func (m *Memory) Refresh() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refresh
}

func (m *Memory) SetTokens(access, refresh string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = access
	m.refresh = refresh
}

func (m *Memory) SetAccess(access string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = access
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = ""
	m.refresh = ""
}
