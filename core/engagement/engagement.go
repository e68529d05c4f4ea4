//go:generate mockgen -package=mocks -mock_names=SDK=MockEngagementSDK -destination=../../mocks/mock_engagement_sdk.go github.com/geobridge/geobridge/core/engagement SDK

// Package engagement defines the capability surface the adapter consumes
// from the vendor analytics SDK: an event sink behind a readiness gate,
// identifier accessors, and a device-attribute store.
package engagement

import "github.com/geobridge/geobridge/core/events"

// SDK is the surface the adapter needs from the vendor engagement SDK.
type SDK interface {
	// OnReady invokes fn once the SDK has finished its own initialization.
	// If the SDK is already ready, fn may run synchronously; otherwise it is
	// queued and runs on an SDK-owned goroutine when readiness is reached.
	// Ordering of queued callbacks is the SDK's own guarantee.
	OnReady(fn func())
	// AddEvent submits a boundary event to the analytics pipeline.
	AddEvent(event events.BoundaryEvent) error
	// SetAssociatedIdentifier associates an external identifier with the
	// SDK's identity store.
	SetAssociatedIdentifier(key, value string) error
	// NamedUserID returns the current named-user id, or "" if none is set.
	NamedUserID() string
	// ChannelID returns the current channel id, or "" if none is set.
	ChannelID() string
	// DeviceAttributes returns the SDK's current attribute snapshot.
	DeviceAttributes() map[string]string
	// SetDeviceAttributes replaces the SDK's attribute snapshot.
	SetDeviceAttributes(attrs map[string]string) error
}
