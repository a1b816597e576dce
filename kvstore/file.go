package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// File is a [Store] persisted as a single JSON document on disk, the
// natural medium for the single-user-per-device model. Writes go through
// a temporary file followed by an atomic rename, so readers never observe
// a partially written document.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string][]byte
	loaded bool
}

// NewFile creates a file-backed store at path. The file is created lazily
// on the first write; a missing file reads as an empty store.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) load() error {
	if f.loaded {
		return nil
	}

	values := map[string][]byte{}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read %s: %w", f.path, err)
		}
	} else {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode %s: %w", f.path, err)
		}
		for key, value := range raw {
			values[key] = []byte(value)
		}
	}

	f.values = values
	f.loaded = true
	return nil
}

func (f *File) flush() error {
	raw := make(map[string]json.RawMessage, len(f.values))
	for key, value := range f.values {
		raw[key] = json.RawMessage(value)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// Get returns the stored value, or [ErrNotFound].
//
// Values are stored as raw JSON inside the document, so only JSON-shaped
// values round-trip through a File store. The engine writes nothing else.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return nil, err
	}

	value, ok := f.values[key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key and flushes the whole document.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return err
	}

	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	f.values[key] = stored

	return f.flush()
}

// Delete removes key and flushes. Deleting an absent key is not an error
// and does not touch the file.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return err
	}

	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)

	return f.flush()
}
