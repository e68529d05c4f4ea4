package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// File is a Store backed by a YAML file in a private namespace path. The
// file is rewritten whole on every Save; a temp-file rename keeps a crash
// from leaving a half-written state behind.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a file store at the given path. Parent directories are
// created on first Save.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads the persisted state. A missing file yields the zero State.
func (f *File) Load(_ context.Context) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	buf, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to read state file '%s': %w", f.path, err)
	}

	var state State
	if err := yaml.Unmarshal(buf, &state); err != nil {
		return State{}, fmt.Errorf("failed to parse state file '%s': %w", f.path, err)
	}
	return state, nil
}

// Save writes the state atomically.
func (f *File) Save(_ context.Context, state State) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	buf, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
