//go:generate mockgen -package=mocks -mock_names=SDK=MockPlacesSDK -destination=../../mocks/mock_places_sdk.go github.com/geobridge/geobridge/core/places SDK

// Package places defines the capability surface the adapter consumes from
// the vendor geofencing SDK, together with the visit records it reports.
// The real implementation is supplied by the host application; this package
// also ships a scripted replay implementation for harnesses and tests.
package places

import (
	"errors"
	"time"
)

// ErrNotStarted is returned by SDK.Stop when the SDK is already stopped.
// The adapter treats it as the benign idempotent-stop condition.
var ErrNotStarted = errors.New("places: sdk not started")

// Place is a geographic place known to the places SDK.
type Place struct {
	Identifier string
	Name       string
}

// Visit is a detected dwell interval at a place. Visits are owned by the
// SDK; the adapter only reads them.
type Visit struct {
	Place       Place
	ArrivalAt   time.Time
	DepartureAt time.Time
}

// PlaceListener receives visit boundary callbacks from the SDK. Callbacks
// may arrive on arbitrary SDK-owned goroutines.
type PlaceListener interface {
	OnVisitStart(visit Visit)
	OnVisitEnd(visit Visit)
}

// SDK is the surface the adapter needs from the vendor geofencing SDK.
type SDK interface {
	// SetAPIKey configures the SDK credentials. Must be called before Start.
	SetAPIKey(apiKey string) error
	// Start begins place monitoring.
	Start() error
	// Stop halts place monitoring. Returns ErrNotStarted when the SDK is
	// already stopped.
	Stop() error
	// IsStarted reports the SDK's own live started state, which may diverge
	// from the adapter's persisted intent.
	IsStarted() bool
	// ApplicationInstanceIdentifier returns the stable id the SDK assigned
	// to this installation, or "" if none has been assigned yet.
	ApplicationInstanceIdentifier() string
	// AddListener registers a listener for visit boundaries.
	AddListener(l PlaceListener)
	// RemoveListener unregisters a previously added listener.
	RemoveListener(l PlaceListener)
	// DeviceAttributes returns the SDK's current attribute snapshot.
	DeviceAttributes() map[string]string
	// SetDeviceAttributes replaces the SDK's attribute snapshot.
	SetDeviceAttributes(attrs map[string]string) error
}
