package settingskey

import (
	"path/filepath"
	"strings"
	"sync"
)

// Memory implements Driver with thread-safe in-memory storage.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an in-memory Driver instance.
func NewMemory() Driver {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(v), nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = clone(value)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys returns all keys matching the prefix and pattern.
func (m *Memory) Keys(prefix, pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return matchKeys(m.data, prefix, pattern)
}

// Clear removes all keys with the given prefix.
func (m *Memory) Clear(prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clearPrefix(m.data, prefix)
	return nil
}

func clone(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}

// matchKeys returns the keys of data under prefix+":" whose remainder matches
// the glob pattern. An empty pattern or "*" matches everything under prefix.
func matchKeys(data map[string][]byte, prefix, pattern string) ([]string, error) {
	if pattern != "" && pattern != "*" {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, ErrInvalidPattern
		}
	}

	var result []string
	for key := range data {
		if !strings.HasPrefix(key, prefix+":") {
			continue
		}

		if pattern != "" && pattern != "*" {
			matched, err := filepath.Match(pattern, key[len(prefix)+1:])
			if err != nil {
				return nil, ErrInvalidPattern
			}
			if !matched {
				continue
			}
		}

		result = append(result, key)
	}

	return result, nil
}

func clearPrefix(data map[string][]byte, prefix string) int {
	removed := 0
	for key := range data {
		if strings.HasPrefix(key, prefix+":") {
			delete(data, key)
			removed++
		}
	}
	return removed
}
