package engagement

import (
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/geobridge/geobridge/core/events"
)

// Memory is an in-process engagement SDK. It records submitted events and
// keeps attributes and identifiers in concurrent maps. Readiness is
// controllable: callbacks registered before Ready() are queued and released
// in registration order, matching the readiness-gate contract real
// engagement SDKs expose.
//
// Memory backs the CLI harness and integration tests.
type Memory struct {
	attrs       cmap.ConcurrentMap[string, string]
	identifiers cmap.ConcurrentMap[string, string]

	mu          sync.Mutex
	ready       bool
	pending     []func()
	eventsSeen  []events.BoundaryEvent
	namedUserID string
	channelID   string
}

// NewMemory creates a Memory SDK. It starts not ready; call Ready to
// release queued callbacks, or NewReadyMemory for one that starts ready.
func NewMemory() *Memory {
	return &Memory{
		attrs:       cmap.New[string](),
		identifiers: cmap.New[string](),
	}
}

// NewReadyMemory creates a Memory SDK that is immediately ready.
func NewReadyMemory() *Memory {
	m := NewMemory()
	m.ready = true
	return m
}

// Ready marks the SDK ready and releases queued callbacks in order, each on
// its own goroutine as a real SDK would.
func (m *Memory) Ready() {
	m.mu.Lock()
	if m.ready {
		m.mu.Unlock()
		return
	}
	m.ready = true
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	go func() {
		for _, fn := range pending {
			fn()
		}
	}()
}

// OnReady runs fn immediately when ready, otherwise queues it.
func (m *Memory) OnReady(fn func()) {
	m.mu.Lock()
	if !m.ready {
		m.pending = append(m.pending, fn)
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()
	fn()
}

// AddEvent records the event.
func (m *Memory) AddEvent(event events.BoundaryEvent) error {
	m.mu.Lock()
	m.eventsSeen = append(m.eventsSeen, event)
	m.mu.Unlock()
	return nil
}

// Events returns a copy of every event submitted so far.
func (m *Memory) Events() []events.BoundaryEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]events.BoundaryEvent, len(m.eventsSeen))
	copy(out, m.eventsSeen)
	return out
}

// SetAssociatedIdentifier stores an identifier association.
func (m *Memory) SetAssociatedIdentifier(key, value string) error {
	m.identifiers.Set(key, value)
	return nil
}

// AssociatedIdentifier returns a stored association.
func (m *Memory) AssociatedIdentifier(key string) (string, bool) {
	return m.identifiers.Get(key)
}

// SetNamedUserID sets the named-user id ("" clears it).
func (m *Memory) SetNamedUserID(id string) {
	m.mu.Lock()
	m.namedUserID = id
	m.mu.Unlock()
}

// NamedUserID returns the current named-user id.
func (m *Memory) NamedUserID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.namedUserID
}

// SetChannelID sets the channel id ("" clears it).
func (m *Memory) SetChannelID(id string) {
	m.mu.Lock()
	m.channelID = id
	m.mu.Unlock()
}

// ChannelID returns the current channel id.
func (m *Memory) ChannelID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.channelID
}

// DeviceAttributes returns a snapshot of the stored attributes.
func (m *Memory) DeviceAttributes() map[string]string {
	return m.attrs.Items()
}

// SetDeviceAttributes replaces the stored attributes.
func (m *Memory) SetDeviceAttributes(attrs map[string]string) error {
	m.attrs.Clear()
	for k, v := range attrs {
		m.attrs.Set(k, v)
	}
	return nil
}
