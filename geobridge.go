// Package geobridge bridges a geofencing/places SDK into a
// customer-engagement analytics SDK: it forwards lifecycle calls, turns
// visit boundaries into analytics events, and mirrors device identifiers
// between the two systems.
package geobridge

import (
	"github.com/geobridge/geobridge/core"
	"github.com/geobridge/geobridge/interfaces"
)

// Options configures a new Adapter. See core.Options.
type Options = core.Options

// NewAdapter creates a new adapter instance. Callers own its lifecycle;
// for a process-wide shared instance see the mobile/bridge package.
func NewAdapter(opts Options) (interfaces.Adapter, error) {
	return core.NewAdapter(opts)
}
