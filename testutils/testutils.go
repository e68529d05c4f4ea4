// Package testutils provides shared fakes and helpers for geobridge tests.
package testutils

import (
	"context"
	"sync"
	"time"
)

// TestTimeout is the default timeout for operations in tests.
const TestTimeout = 5 * time.Second

// TestInterval is the default interval for polling in tests.
const TestInterval = 10 * time.Millisecond

// FakeRequester is a scriptable permission requester. The zero value
// reports not granted and denies every prompt.
type FakeRequester struct {
	mu sync.Mutex

	granted  bool
	decision bool
	requests int

	// gate, when set, blocks Request until closed or the context ends.
	gate chan struct{}
}

// NewFakeRequester creates a requester with the given current grant state
// and prompt decision.
func NewFakeRequester(granted, decision bool) *FakeRequester {
	return &FakeRequester{granted: granted, decision: decision}
}

// Granted reports the scripted grant state.
func (f *FakeRequester) Granted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.granted
}

// SetGranted changes the scripted grant state.
func (f *FakeRequester) SetGranted(granted bool) {
	f.mu.Lock()
	f.granted = granted
	f.mu.Unlock()
}

// Block makes subsequent Request calls wait until Unblock or context
// cancellation.
func (f *FakeRequester) Block() {
	f.mu.Lock()
	f.gate = make(chan struct{})
	f.mu.Unlock()
}

// Unblock releases a pending Block gate.
func (f *FakeRequester) Unblock() {
	f.mu.Lock()
	gate := f.gate
	f.gate = nil
	f.mu.Unlock()
	if gate != nil {
		close(gate)
	}
}

// Requests returns how many prompts were issued.
func (f *FakeRequester) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

// Request returns the scripted decision, updating the grant state on
// grant. It honors an active Block gate and context cancellation.
func (f *FakeRequester) Request(ctx context.Context) (bool, error) {
	f.mu.Lock()
	f.requests++
	gate := f.gate
	decision := f.decision
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if decision {
		f.SetGranted(true)
	}
	return decision, nil
}
