package cache

import (
	"context"
	"sync"
	"time"

	"github.com/frontend-hunter/opp-comb/app/listing"
)

type memoryEntry struct {
	items     []listing.Item
	expiresAt time.Time
}

// Memory is an in-process Store with lazy expiry. It is the default backend
// and the test double for the gateway.
type Memory struct {
	entries map[string]memoryEntry
	mu      sync.RWMutex
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]listing.Item, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false, nil
	}

	// Copy so callers can never mutate the cached slice.
	out := make([]listing.Item, len(entry.items))
	copy(out, entry.items)
	return out, true, nil
}

func (m *Memory) Set(_ context.Context, key string, items []listing.Item, ttl time.Duration) error {
	stored := make([]listing.Item, len(items))
	copy(stored, items)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{
		items:     stored,
		expiresAt: m.now().Add(ttl),
	}
	return nil
}

func (m *Memory) Close() error {
	return nil
}
