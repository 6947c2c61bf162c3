// Package storage provides the key-value persistence port used by every
// persisted store, plus a versioned JSON envelope for store snapshots.
package storage

import (
	"encoding/json"
	"sync"
)

// Store is the narrow persistence port. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the payload for a name. ok is false when absent.
	Get(name string) (data []byte, ok bool, err error)
	// Set writes the payload for a name, replacing any previous value.
	Set(name string, data []byte) error
	// Delete removes a name. Deleting an absent name is not an error.
	Delete(name string) error
}

// Compile-time interface check.
var _ Store = (*Memory)(nil)

// Memory is an in-memory store, used as the fallback when no durable
// backend is available and as the test double.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Get(name string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.entries[name]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (m *Memory) Set(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.entries[name] = stored
	return nil
}

func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, name)
	return nil
}

// envelope wraps a persisted snapshot with its store name and schema
// version. The version is a hook for future migration; older or absent
// data simply reads back as the zero value.
type envelope struct {
	Name    string          `json:"name"`
	Version int             `json:"version"`
	Payload json.RawMessage `json:"payload"`
}

// LoadState reads a versioned snapshot into out. Absent, corrupt, or
// version-mismatched data leaves out untouched and reports ok=false;
// persisted state is never allowed to fail an application start.
func LoadState(s Store, name string, version int, out any) bool {
	if s == nil {
		return false
	}

	data, ok, err := s.Get(name)
	if err != nil || !ok {
		return false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return false
	}
	if env.Version != version || len(env.Payload) == 0 {
		return false
	}
	return json.Unmarshal(env.Payload, out) == nil
}

// SaveState writes a versioned snapshot. Writes are fire-and-forget from
// the stores' point of view; the error is surfaced for callers that care.
func SaveState(s Store, name string, version int, payload any) error {
	if s == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	data, err := json.Marshal(envelope{Name: name, Version: version, Payload: raw})
	if err != nil {
		return err
	}
	return s.Set(name, data)
}
