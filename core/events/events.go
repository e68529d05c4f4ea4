// Package events defines the boundary events the adapter derives from
// place visits before handing them to the engagement pipeline.
package events

import "github.com/geobridge/geobridge/core/places"

// Source identifies this adapter as the origin of every boundary event.
const Source = "Places"

// Direction indicates which side of a region boundary was crossed.
type Direction int

const (
	// Enter marks the start of a visit.
	Enter Direction = iota
	// Exit marks the end of a visit.
	Exit
)

// String returns the wire name of the direction.
func (d Direction) String() string {
	if d == Enter {
		return "enter"
	}
	return "exit"
}

// BoundaryEvent is the analytics-facing record of entering or exiting a
// geographic region. It is constructed per visit callback and discarded
// after dispatch; the adapter never retains one.
type BoundaryEvent struct {
	Direction Direction
	Source    string
	RegionID  string
}

// NewEnter builds an ENTER event for the visited place.
func NewEnter(visit places.Visit) BoundaryEvent {
	return BoundaryEvent{
		Direction: Enter,
		Source:    Source,
		RegionID:  visit.Place.Identifier,
	}
}

// NewExit builds an EXIT event for the visited place.
func NewExit(visit places.Visit) BoundaryEvent {
	return BoundaryEvent{
		Direction: Exit,
		Source:    Source,
		RegionID:  visit.Place.Identifier,
	}
}
