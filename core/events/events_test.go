package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/geobridge/geobridge/core/places"
)

func TestNewEnter(t *testing.T) {
	visit := places.Visit{
		Place:     places.Place{Identifier: "place-42", Name: "Coffee"},
		ArrivalAt: time.Now(),
	}

	event := NewEnter(visit)
	assert.Equal(t, Enter, event.Direction)
	assert.Equal(t, Source, event.Source)
	assert.Equal(t, "place-42", event.RegionID)
}

func TestNewExit(t *testing.T) {
	visit := places.Visit{
		Place:       places.Place{Identifier: "place-42"},
		ArrivalAt:   time.Now().Add(-time.Hour),
		DepartureAt: time.Now(),
	}

	event := NewExit(visit)
	assert.Equal(t, Exit, event.Direction)
	assert.Equal(t, "place-42", event.RegionID)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "enter", Enter.String())
	assert.Equal(t, "exit", Exit.String())
}
