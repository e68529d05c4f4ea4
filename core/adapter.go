// Package core implements the adapter that bridges the places SDK's visit
// boundaries into the engagement SDK's analytics pipeline and mirrors
// device identifiers between the two.
package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/geobridge/geobridge/core/attributes"
	"github.com/geobridge/geobridge/core/engagement"
	"github.com/geobridge/geobridge/core/events"
	"github.com/geobridge/geobridge/core/metrics"
	"github.com/geobridge/geobridge/core/permission"
	"github.com/geobridge/geobridge/core/places"
	"github.com/geobridge/geobridge/core/registry"
	"github.com/geobridge/geobridge/core/store"
	"github.com/geobridge/geobridge/pkg/logging"
)

// Options configures a new Adapter. Places, Engagement, and Requester are
// required; everything else has a working default.
type Options struct {
	// Places is the vendor geofencing SDK.
	Places places.SDK
	// Engagement is the vendor analytics SDK.
	Engagement engagement.SDK
	// Requester is the host platform's location-permission capability.
	Requester permission.Requester
	// Store persists the API key and started flag. Defaults to an
	// in-memory store.
	Store store.Store
	// Logger defaults to the global logger.
	Logger logging.Logger
	// Metrics is optional; a nil value disables instrumentation.
	Metrics *metrics.Metrics
	// EventsPerSecond caps boundary-event forwarding when positive; excess
	// events are dropped with a warning. Zero disables the cap.
	EventsPerSecond float64
	// EventBurst is the limiter burst when EventsPerSecond is set.
	// Defaults to 1.
	EventBurst int
}

// Adapter mediates between the places SDK and the engagement SDK. It is an
// explicitly constructed component with a controlled lifecycle; callers
// that need a process-wide instance use the mobile/bridge package.
type Adapter struct {
	places     places.SDK
	engagement engagement.SDK
	prompter   *permission.Prompter
	store      store.Store
	registry   *registry.Registry
	logger     logging.Logger
	metrics    *metrics.Metrics
	limiter    *rate.Limiter

	mu      sync.Mutex
	apiKey  string
	started bool

	visitListener places.PlaceListener
}

// NewAdapter creates an adapter from the given options.
func NewAdapter(opts Options) (*Adapter, error) {
	if opts.Places == nil {
		return nil, errors.New("adapter requires a places SDK")
	}
	if opts.Engagement == nil {
		return nil, errors.New("adapter requires an engagement SDK")
	}
	if opts.Requester == nil {
		return nil, errors.New("adapter requires a permission requester")
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger = logger.With("component", "adapter")

	st := opts.Store
	if st == nil {
		st = store.NewMemory()
	}

	prompter, err := permission.NewPrompter(opts.Requester, logger)
	if err != nil {
		return nil, err
	}

	var limiter *rate.Limiter
	if opts.EventsPerSecond > 0 {
		burst := opts.EventBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.EventsPerSecond), burst)
	}

	a := &Adapter{
		places:     opts.Places,
		engagement: opts.Engagement,
		prompter:   prompter,
		store:      st,
		registry:   registry.New(),
		logger:     logger,
		metrics:    opts.Metrics,
		limiter:    limiter,
	}
	a.visitListener = &visitListener{adapter: a}
	return a, nil
}

// AddListener registers a listener for boundary events and returns the
// handle that removes it. Listener identities persist across stop/start.
func (a *Adapter) AddListener(l registry.Listener) registry.Handle {
	return a.registry.Add(l)
}

// RemoveListener unregisters the listener behind the handle.
func (a *Adapter) RemoveListener(h registry.Handle) {
	a.registry.Remove(h)
}

// Restore re-applies the last persisted run state. If an API key was
// persisted and the adapter was started, the start sequence runs again.
// Should be called once at process startup; calling it again is a no-op
// when the adapter is already started.
func (a *Adapter) Restore(ctx context.Context) error {
	state, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	if state.APIKey == "" || !state.Started {
		return nil
	}

	a.logger.Info("restoring adapter from persisted state")
	a.startAdapter(ctx, state.APIKey)
	return nil
}

// Start starts the adapter with the given API key. The location permission
// must already be granted; without it the places SDK will not detect
// visits. Use IsPermissionGranted to check and StartWithPermissionPrompt
// to prompt while starting. A second Start while running is a no-op.
//
// The only failure signal is the returned boolean: true when the places
// SDK reports itself started.
func (a *Adapter) Start(ctx context.Context, apiKey string) bool {
	a.startAdapter(ctx, apiKey)
	return a.IsStarted()
}

// StartWithPermissionPrompt prompts for the location permission on a
// background worker and starts the adapter when it is granted. The
// callback, if any, receives the grant result regardless of whether the
// start itself succeeded, exactly once; a prompt cancelled by Stop never
// fires it. Safe to call from a foreground UI context.
func (a *Adapter) StartWithPermissionPrompt(apiKey string, callback permission.ResultCallback) {
	a.prompter.Prompt(
		func() {
			a.startAdapter(context.Background(), apiKey)
		},
		func(granted bool) {
			if granted {
				a.metrics.PromptResult("granted")
			} else {
				a.metrics.PromptResult("denied")
			}
			if callback != nil {
				callback(granted)
			}
		},
	)
}

func (a *Adapter) startAdapter(ctx context.Context, apiKey string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.started {
		return
	}

	if err := a.store.Save(ctx, store.State{APIKey: apiKey, Started: true}); err != nil {
		a.logger.Error("failed to persist adapter state", "error", err)
	}
	a.apiKey = apiKey

	if err := a.places.SetAPIKey(apiKey); err != nil {
		a.logger.Error("failed to set places api key", "error", err)
	}
	// Register the visit listener before starting so no boundary delivered
	// during startup is missed.
	a.places.AddListener(a.visitListener)
	a.started = true
	if err := a.places.Start(); err != nil {
		a.logger.Error("failed to start places sdk", "error", err)
	}

	a.updateDeviceAttributes(ctx, apiKey)

	a.logger.Info("adapter started",
		"sdk_started", a.places.IsStarted(),
		"instance_id", a.places.ApplicationInstanceIdentifier())
}

// Stop stops the adapter: any outstanding permission prompt is cancelled,
// the places SDK is stopped, and the started flag is cleared in memory and
// in the persisted state. Stopping an adapter that is not started logs a
// warning and changes nothing.
func (a *Adapter) Stop(ctx context.Context) {
	if !a.IsStarted() {
		a.logger.Warn("stop called when adapter was not started")
		return
	}

	a.prompter.Cancel()

	a.mu.Lock()
	a.started = false
	apiKey := a.apiKey
	a.mu.Unlock()

	// The SDK's Stop may join callback goroutines that re-enter the
	// adapter, so the mutex must not be held across it. The cleared flag
	// already drops any visit still in flight.
	if err := a.places.Stop(); err != nil {
		// Double-stop is a benign, expected condition; anything else is
		// still suppressed because this layer never propagates lifecycle
		// failures outward.
		if errors.Is(err, places.ErrNotStarted) {
			a.logger.Warn("places sdk was already stopped", "error", err)
		} else {
			a.logger.Error("failed to stop places sdk", "error", err)
		}
	}
	a.places.RemoveListener(a.visitListener)

	if err := a.store.Save(ctx, store.State{APIKey: apiKey, Started: false}); err != nil {
		a.logger.Error("failed to persist adapter state", "error", err)
	}

	a.logger.Info("adapter stopped")
}

// IsStarted is true only while both the adapter's own intent and the
// places SDK's live state agree; the SDK may stop itself independently.
func (a *Adapter) IsStarted() bool {
	a.mu.Lock()
	started := a.started
	a.mu.Unlock()
	return started && a.places.IsStarted()
}

// IsPermissionGranted reports the current OS-level grant state for the
// location permission. Pure query.
func (a *Adapter) IsPermissionGranted() bool {
	return a.prompter.Granted()
}

// UpdateDeviceAttributes merges both SDKs' device attributes, overlays the
// engagement named-user and channel ids, writes the merged map back to the
// engagement SDK, and associates the places instance identifier with the
// engagement identity store. A no-op until an API key is configured.
func (a *Adapter) UpdateDeviceAttributes(ctx context.Context) error {
	state, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	if state.APIKey == "" {
		return nil
	}
	a.updateDeviceAttributes(ctx, state.APIKey)
	return nil
}

func (a *Adapter) updateDeviceAttributes(_ context.Context, apiKey string) {
	if apiKey == "" {
		return
	}

	merged := attributes.Merge(
		a.engagement.DeviceAttributes(),
		a.places.DeviceAttributes(),
		a.engagement.NamedUserID(),
		a.engagement.ChannelID(),
	)
	if len(merged) > 0 {
		if err := a.engagement.SetDeviceAttributes(merged); err != nil {
			a.logger.Error("failed to update device attributes", "error", err)
		}
	}

	if instanceID := a.places.ApplicationInstanceIdentifier(); instanceID != "" {
		if err := a.engagement.SetAssociatedIdentifier(attributes.KeyInstanceID, instanceID); err != nil {
			a.logger.Error("failed to associate places instance id", "error", err)
		}
	}
}

// Close cancels any outstanding permission prompt and releases the
// background worker. The adapter must not be used afterwards.
func (a *Adapter) Close() {
	a.prompter.Close()
}

func (a *Adapter) startedFlag() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.started
}

func (a *Adapter) onVisit(direction events.Direction, visit places.Visit) {
	if !a.startedFlag() {
		a.logger.Debug("dropping visit, adapter stopped", "place_id", visit.Place.Identifier)
		a.metrics.EventDropped("stopped")
		return
	}
	if a.limiter != nil && !a.limiter.Allow() {
		a.logger.Warn("dropping visit, event rate limit exceeded", "place_id", visit.Place.Identifier)
		a.metrics.EventDropped("throttled")
		return
	}

	var event events.BoundaryEvent
	if direction == events.Enter {
		event = events.NewEnter(visit)
	} else {
		event = events.NewExit(visit)
	}

	// The engagement pipeline may not be ready yet; submission and listener
	// dispatch are deferred until it signals readiness. Ordering across
	// rapid visits follows the readiness callbacks' own ordering.
	a.engagement.OnReady(func() {
		if !a.startedFlag() {
			a.metrics.EventDropped("stopped")
			return
		}

		if err := a.engagement.AddEvent(event); err != nil {
			a.logger.Error("failed to submit boundary event", "error", err,
				"region_id", event.RegionID)
		}
		a.metrics.EventForwarded(direction.String())

		for _, l := range a.registry.Snapshot() {
			if direction == events.Enter {
				l.OnRegionEntered(event, visit)
			} else {
				l.OnRegionExited(event, visit)
			}
		}
	})
}

// visitListener adapts the places SDK's callbacks onto the adapter.
type visitListener struct {
	adapter *Adapter
}

func (v *visitListener) OnVisitStart(visit places.Visit) {
	v.adapter.logger.Info("entered place",
		"place", visit.Place.Name,
		"arrival", visit.ArrivalAt.Format(time.RFC3339))
	v.adapter.onVisit(events.Enter, visit)
}

func (v *visitListener) OnVisitEnd(visit places.Visit) {
	v.adapter.logger.Info("exited place",
		"place", visit.Place.Name,
		"arrival", visit.ArrivalAt.Format(time.RFC3339),
		"departure", visit.DepartureAt.Format(time.RFC3339))
	v.adapter.onVisit(events.Exit, visit)
}
