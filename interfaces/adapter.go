// Package interfaces declares the public surface of the geobridge library.
package interfaces

import (
	"context"

	"github.com/geobridge/geobridge/core/permission"
	"github.com/geobridge/geobridge/core/registry"
)

// Adapter bridges a places SDK into an engagement SDK.
type Adapter interface {
	// Restore re-applies the last persisted run state at process startup.
	Restore(ctx context.Context) error
	// Start starts the adapter; the location permission must already be
	// granted. Returns whether the places SDK reports itself started.
	Start(ctx context.Context, apiKey string) bool
	// StartWithPermissionPrompt prompts for the location permission in the
	// background, then starts the adapter on grant. The callback receives
	// the grant result exactly once unless the prompt is cancelled.
	StartWithPermissionPrompt(apiKey string, callback permission.ResultCallback)
	// Stop stops the adapter and clears the persisted started flag.
	Stop(ctx context.Context)
	// IsStarted is true only if the adapter and the places SDK agree.
	IsStarted() bool
	// IsPermissionGranted reports the OS-level location permission state.
	IsPermissionGranted() bool
	// UpdateDeviceAttributes mirrors device attributes and identifiers
	// between the two SDKs.
	UpdateDeviceAttributes(ctx context.Context) error
	// AddListener registers a boundary-event listener.
	AddListener(l registry.Listener) registry.Handle
	// RemoveListener unregisters the listener behind the handle.
	RemoveListener(h registry.Handle)
	// Close releases the adapter's background resources.
	Close()
}
