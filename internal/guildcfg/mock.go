package guildcfg

import (
	"encoding/json"
	"sync"
)

// Mock is an in-memory implementation of Store for testing.
// It is safe for concurrent use.
type Mock struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMock creates a new mock store.
func NewMock() *Mock {
	return &Mock{
		values: make(map[string]string),
	}
}

func (m *Mock) key(guildID, key string) string {
	return guildID + "|" + key
}

func (m *Mock) GetString(guildID, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[m.key(guildID, key)]; ok {
		return v, nil
	}
	return scalarDefaults[key], nil
}

func (m *Mock) SetString(guildID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[m.key(guildID, key)] = value
	return nil
}

func (m *Mock) GetDocument(guildID, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[m.key(guildID, key)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal([]byte(v), out)
}

func (m *Mock) SetDocument(guildID, key string, doc any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.values[m.key(guildID, key)] = string(b)
	return nil
}
