//go:generate mockgen -package=mocks -destination=../../mocks/mock_listener.go github.com/geobridge/geobridge/core/registry Listener

// Package registry holds the adapter's listener registry. Registration and
// removal are safe from arbitrary goroutines while dispatch iterates a
// stable snapshot, so listeners added or removed during a callback do not
// affect the dispatch already in flight.
package registry

import (
	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/geobridge/geobridge/core/events"
	"github.com/geobridge/geobridge/core/places"
)

// Listener receives the boundary events the adapter derives from visits.
type Listener interface {
	// OnRegionEntered is called when an ENTER event is created from a visit.
	OnRegionEntered(event events.BoundaryEvent, visit places.Visit)
	// OnRegionExited is called when an EXIT event is created from a visit.
	OnRegionExited(event events.BoundaryEvent, visit places.Visit)
}

// Handle identifies a registration and is required to remove it.
type Handle string

// Registry is a concurrency-safe listener set with snapshot iteration.
type Registry struct {
	listeners cmap.ConcurrentMap[string, Listener]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{listeners: cmap.New[Listener]()}
}

// Add registers a listener and returns the handle that removes it. The same
// listener value may be registered more than once; each registration is
// dispatched separately.
func (r *Registry) Add(l Listener) Handle {
	h := Handle(uuid.NewString())
	r.listeners.Set(string(h), l)
	return h
}

// Remove unregisters the listener behind the handle. Unknown handles are
// ignored.
func (r *Registry) Remove(h Handle) {
	r.listeners.Remove(string(h))
}

// Len returns the number of current registrations.
func (r *Registry) Len() int {
	return r.listeners.Count()
}

// Snapshot returns the listeners registered at the moment of the call.
func (r *Registry) Snapshot() []Listener {
	out := make([]Listener, 0, r.listeners.Count())
	for item := range r.listeners.IterBuffered() {
		out = append(out, item.Val)
	}
	return out
}
