//go:generate mockgen -package=mocks -destination=../../mocks/mock_store.go github.com/geobridge/geobridge/core/store Store

// Package store persists the adapter's configuration: the places API key
// and the started flag. Writes are last-writer-wins; no multi-key
// atomicity is required beyond what the backing store provides.
package store

import (
	"context"
	"sync"
)

// State is the persisted adapter configuration. It survives process
// restarts and is mutated only by the adapter's start/stop sequences.
type State struct {
	APIKey  string `yaml:"api_key"`
	Started bool   `yaml:"started"`
}

// Store is a durable key-value namespace for the adapter state.
type Store interface {
	// Load returns the persisted state. A store with no prior state returns
	// the zero State and no error.
	Load(ctx context.Context) (State, error)
	// Save replaces the persisted state.
	Save(ctx context.Context, state State) error
}

// Memory is a Store that lives only for the process lifetime. It is the
// default when no durable backend is configured, and the backend of choice
// in tests.
type Memory struct {
	mu    sync.Mutex
	state State
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load returns the current state.
func (m *Memory) Load(_ context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, nil
}

// Save replaces the current state.
func (m *Memory) Save(_ context.Context, state State) error {
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()
	return nil
}
