// Package bridge provides a mobile-friendly wrapper around the core
// geobridge adapter: a process-wide shared instance behind basic-typed
// entry points, suitable for gomobile binding. Host code configures the
// instance once and then reaches it through package functions.
package bridge

import (
	"context"
	"errors"
	"sync"

	"github.com/geobridge/geobridge/core"
	"github.com/geobridge/geobridge/interfaces"
)

var (
	mu     sync.Mutex
	shared interfaces.Adapter
)

// PermissionCallback is implemented by native mobile code to receive the
// result of a permission prompt.
type PermissionCallback interface {
	// OnResult is called with true if the permission was granted.
	OnResult(granted bool)
}

// Configure constructs the shared adapter exactly once. It returns an
// error if the bridge is already configured; reconfiguration requires a
// process restart, matching the one-time-initialization contract.
func Configure(opts core.Options) error {
	mu.Lock()
	defer mu.Unlock()

	if shared != nil {
		return errors.New("bridge already configured")
	}

	adapter, err := core.NewAdapter(opts)
	if err != nil {
		return err
	}
	shared = adapter
	return nil
}

// Shared returns the process-wide adapter, or nil before Configure.
func Shared() interfaces.Adapter {
	mu.Lock()
	defer mu.Unlock()
	return shared
}

// Restore re-applies the last persisted run state. Call at app startup.
func Restore() error {
	a := Shared()
	if a == nil {
		return errors.New("bridge not configured")
	}
	return a.Restore(context.Background())
}

// Start starts the shared adapter. The location permission must already be
// granted.
func Start(apiKey string) bool {
	a := Shared()
	if a == nil {
		return false
	}
	return a.Start(context.Background(), apiKey)
}

// StartWithPermissionPrompt prompts for the location permission in the
// background and starts the adapter on grant. The callback may be nil.
func StartWithPermissionPrompt(apiKey string, callback PermissionCallback) {
	a := Shared()
	if a == nil {
		if callback != nil {
			callback.OnResult(false)
		}
		return
	}
	a.StartWithPermissionPrompt(apiKey, func(granted bool) {
		if callback != nil {
			callback.OnResult(granted)
		}
	})
}

// Stop stops the shared adapter.
func Stop() {
	if a := Shared(); a != nil {
		a.Stop(context.Background())
	}
}

// IsStarted reports whether the shared adapter is running.
func IsStarted() bool {
	a := Shared()
	return a != nil && a.IsStarted()
}

// IsPermissionGranted reports the OS-level location permission state.
func IsPermissionGranted() bool {
	a := Shared()
	return a != nil && a.IsPermissionGranted()
}

// UpdateDeviceAttributes mirrors device attributes between the two SDKs.
func UpdateDeviceAttributes() error {
	a := Shared()
	if a == nil {
		return errors.New("bridge not configured")
	}
	return a.UpdateDeviceAttributes(context.Background())
}

// SetSharedForTesting replaces the shared adapter. Tests only.
func SetSharedForTesting(a interfaces.Adapter) {
	mu.Lock()
	shared = a
	mu.Unlock()
}
