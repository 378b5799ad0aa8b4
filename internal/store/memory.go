package store

import (
	"sync"
	"time"
)

// Memory is an in-process Store. It is used in tests and when no data
// directory is available.
type Memory struct {
	mu   sync.Mutex
	data map[string]record
	now  func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]record), now: time.Now}
}

// SetClock replaces the time source used for expiry.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *Memory) Get(key string, opts Options) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := scopedKey(key, opts)
	r, ok := m.data[k]
	if !ok {
		return "", false, nil
	}
	if r.expired(m.now()) {
		delete(m.data, k)
		return "", false, nil
	}
	return r.Value, true, nil
}

func (m *Memory) Set(key, value string, opts Options) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[scopedKey(key, opts)] = newRecord(value, opts, m.now())
	return nil
}

func (m *Memory) Delete(key string, opts Options) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, scopedKey(key, opts))
	return nil
}

// Len returns the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func (m *Memory) Close() error { return nil }
