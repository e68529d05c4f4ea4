package registry

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geobridge/geobridge/core/events"
	"github.com/geobridge/geobridge/core/places"
)

type countListener struct {
	entered atomic.Int32
	exited  atomic.Int32
}

func (c *countListener) OnRegionEntered(events.BoundaryEvent, places.Visit) { c.entered.Add(1) }
func (c *countListener) OnRegionExited(events.BoundaryEvent, places.Visit)  { c.exited.Add(1) }

func TestRegistry_AddRemove(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Len())

	l := &countListener{}
	h := r.Add(l)
	assert.Equal(t, 1, r.Len())

	r.Remove(h)
	assert.Equal(t, 0, r.Len())

	// Unknown handles are ignored.
	r.Remove(h)
	r.Remove(Handle("bogus"))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_DuplicateRegistrations(t *testing.T) {
	r := New()
	l := &countListener{}

	h1 := r.Add(l)
	h2 := r.Add(l)
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, r.Len())

	// Each registration is dispatched separately.
	for _, listener := range r.Snapshot() {
		listener.OnRegionEntered(events.BoundaryEvent{}, places.Visit{})
	}
	assert.Equal(t, int32(2), l.entered.Load())

	r.Remove(h1)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SnapshotUnaffectedByLaterMutations(t *testing.T) {
	r := New()
	l1 := &countListener{}
	l2 := &countListener{}

	r.Add(l1)
	h2 := r.Add(l2)

	snapshot := r.Snapshot()
	assert.Len(t, snapshot, 2)

	// Mutations after the snapshot do not affect the dispatch in flight.
	r.Remove(h2)
	r.Add(&countListener{})

	for _, listener := range snapshot {
		listener.OnRegionExited(events.BoundaryEvent{}, places.Visit{})
	}
	assert.Equal(t, int32(1), l1.exited.Load())
	assert.Equal(t, int32(1), l2.exited.Load())
}

func TestRegistry_ConcurrentAddRemoveDuringIteration(t *testing.T) {
	r := New()
	for i := 0; i < 16; i++ {
		r.Add(&countListener{})
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				h := r.Add(&countListener{})
				r.Remove(h)
			}
		}
	}()

	for i := 0; i < 100; i++ {
		for _, listener := range r.Snapshot() {
			listener.OnRegionEntered(events.BoundaryEvent{}, places.Visit{})
		}
	}

	close(stop)
	wg.Wait()
}
