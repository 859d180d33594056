package settingskey

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// File implements Driver on top of a YAML file. The whole file is loaded when
// opened and rewritten after every change through a temporary file and a
// rename. A change that cannot be written is not applied. It does not notice
// changes made by other processes.
type File struct {
	mu   sync.RWMutex
	path string
	data map[string][]byte
}

type fileDocument struct {
	Values map[string]string `yaml:"values"`
}

// OpenFile opens the store at path. A missing file is an empty store; it is
// created on the first write.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, data: make(map[string][]byte)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("settingskey: reading %s: %w", path, err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("settingskey: parsing %s: %w", path, err)
	}
	for key, encoded := range doc.Values {
		value, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: %s in %s: %w", ErrCorruptValue, key, path, err)
		}
		f.data[key] = value
	}
	return f, nil
}

// Path returns the file backing the store.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(key string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	v, ok := f.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(v), nil
}

func (f *File) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.update(func(data map[string][]byte) bool {
		data[key] = clone(value)
		return true
	})
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.update(func(data map[string][]byte) bool {
		if _, ok := data[key]; !ok {
			return false
		}
		delete(data, key)
		return true
	})
}

func (f *File) Keys(prefix, pattern string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return matchKeys(f.data, prefix, pattern)
}

func (f *File) Clear(prefix string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.update(func(data map[string][]byte) bool {
		return clearPrefix(data, prefix) > 0
	})
}

// update applies mutate to a copy of the store and keeps the copy only once it
// is on disk. mutate reports whether it changed anything. f.mu must be held.
func (f *File) update(mutate func(map[string][]byte) bool) error {
	next := maps.Clone(f.data)
	if !mutate(next) {
		return nil
	}
	if err := f.save(next); err != nil {
		return err
	}
	f.data = next
	return nil
}

func (f *File) save(data map[string][]byte) error {
	doc := fileDocument{Values: make(map[string]string, len(data))}
	for key, value := range data {
		doc.Values[key] = base64.StdEncoding.EncodeToString(value)
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("settingskey: encoding %s: %w", f.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("settingskey: writing %s: %w", f.path, err)
	}
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("settingskey: writing %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("settingskey: writing %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("settingskey: writing %s: %w", f.path, err)
	}
	return nil
}
