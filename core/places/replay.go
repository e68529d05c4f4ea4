package places

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/geobridge/geobridge/pkg/logging"
)

// ReplayStep is one scripted visit: a dwell at a place followed by a pause
// before the next visit begins.
type ReplayStep struct {
	PlaceID   string `yaml:"place_id"`
	PlaceName string `yaml:"place_name"`
	DwellMs   int    `yaml:"dwell_ms"`
	PauseMs   int    `yaml:"pause_ms"`
}

// Script is a scripted visit schedule for the replay SDK.
type Script struct {
	Visits []ReplayStep `yaml:"visits"`
}

// LoadScript loads a visit script from a YAML file.
func LoadScript(filePath string) (*Script, error) {
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read visit script '%s': %w", filePath, err)
	}

	var script Script
	if err := yaml.Unmarshal(buf, &script); err != nil {
		return nil, fmt.Errorf("failed to parse visit script: %w", err)
	}

	if len(script.Visits) == 0 {
		return nil, fmt.Errorf("visit script '%s' contains no visits", filePath)
	}
	return &script, nil
}

// ReplaySDK is an in-process places SDK that replays a scripted visit
// schedule instead of monitoring real geofences. It backs the CLI harness
// and integration tests.
type ReplaySDK struct {
	script     *Script
	instanceID string
	logger     logging.Logger

	mu        sync.Mutex
	apiKey    string
	started   bool
	cancel    context.CancelFunc
	listeners map[PlaceListener]struct{}
	attrs     map[string]string
	done      chan struct{}
}

// NewReplaySDK creates a replay SDK for the given script. A nil script is
// allowed; Start then succeeds but reports no visits.
func NewReplaySDK(script *Script, logger logging.Logger) *ReplaySDK {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &ReplaySDK{
		script:     script,
		instanceID: uuid.NewString(),
		logger:     logger.With("component", "replay_sdk"),
		listeners:  make(map[PlaceListener]struct{}),
	}
}

// SetAPIKey records the credentials. The replay SDK accepts any non-empty key.
func (s *ReplaySDK) SetAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("api key must not be empty")
	}
	s.mu.Lock()
	s.apiKey = apiKey
	s.mu.Unlock()
	return nil
}

// Start begins replaying the script on a background goroutine.
func (s *ReplaySDK) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.apiKey == "" {
		return fmt.Errorf("api key not configured")
	}
	if s.started {
		return fmt.Errorf("replay sdk already started")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.started = true
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
	return nil
}

// Stop halts the replay. Returns ErrNotStarted when already stopped.
func (s *ReplaySDK) Stop() error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrNotStarted
	}
	s.started = false
	cancel := s.cancel
	s.cancel = nil
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done
	return nil
}

// IsStarted reports whether the replay is running. The replay stops itself
// once the script is exhausted, so this can flip to false on its own.
func (s *ReplaySDK) IsStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// ApplicationInstanceIdentifier returns the id assigned to this replay
// instance at construction.
func (s *ReplaySDK) ApplicationInstanceIdentifier() string {
	return s.instanceID
}

// AddListener registers a visit listener.
func (s *ReplaySDK) AddListener(l PlaceListener) {
	s.mu.Lock()
	s.listeners[l] = struct{}{}
	s.mu.Unlock()
}

// RemoveListener unregisters a visit listener.
func (s *ReplaySDK) RemoveListener(l PlaceListener) {
	s.mu.Lock()
	delete(s.listeners, l)
	s.mu.Unlock()
}

// DeviceAttributes returns an empty snapshot; the replay SDK keeps no
// attributes of its own until SetDeviceAttributes stores some.
func (s *ReplaySDK) DeviceAttributes() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.attrs))
	for k, v := range s.attrs {
		out[k] = v
	}
	return out
}

// SetDeviceAttributes replaces the stored attribute snapshot.
func (s *ReplaySDK) SetDeviceAttributes(attrs map[string]string) error {
	s.mu.Lock()
	s.attrs = make(map[string]string, len(attrs))
	for k, v := range attrs {
		s.attrs[k] = v
	}
	s.mu.Unlock()
	return nil
}

func (s *ReplaySDK) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	// With no script the SDK idles until stopped, like a real SDK with no
	// geofences nearby.
	if s.script == nil {
		<-ctx.Done()
		return
	}

	for _, step := range s.script.Visits {
		visit := Visit{
			Place:     Place{Identifier: step.PlaceID, Name: step.PlaceName},
			ArrivalAt: time.Now(),
		}

		s.logger.Debug("replaying visit start", "place_id", step.PlaceID)
		for _, l := range s.snapshotListeners() {
			l.OnVisitStart(visit)
		}

		if !sleepCtx(ctx, time.Duration(step.DwellMs)*time.Millisecond) {
			return
		}

		visit.DepartureAt = time.Now()
		s.logger.Debug("replaying visit end", "place_id", step.PlaceID)
		for _, l := range s.snapshotListeners() {
			l.OnVisitEnd(visit)
		}

		if !sleepCtx(ctx, time.Duration(step.PauseMs)*time.Millisecond) {
			return
		}
	}

	// Script exhausted: the SDK stops itself, independent of the adapter's
	// persisted intent.
	s.mu.Lock()
	s.started = false
	s.cancel = nil
	s.mu.Unlock()
	s.logger.Info("visit script exhausted, replay sdk stopped")
}

func (s *ReplaySDK) snapshotListeners() []PlaceListener {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PlaceListener, 0, len(s.listeners))
	for l := range s.listeners {
		out = append(out, l)
	}
	return out
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
