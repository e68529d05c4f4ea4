package places

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geobridge/geobridge/pkg/logging"
)

type recPlaceListener struct {
	mu     sync.Mutex
	starts []Visit
	ends   []Visit
}

func (r *recPlaceListener) OnVisitStart(visit Visit) {
	r.mu.Lock()
	r.starts = append(r.starts, visit)
	r.mu.Unlock()
}

func (r *recPlaceListener) OnVisitEnd(visit Visit) {
	r.mu.Lock()
	r.ends = append(r.ends, visit)
	r.mu.Unlock()
}

func (r *recPlaceListener) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.starts), len(r.ends)
}

func testLogger() logging.Logger {
	return logging.GetLogger()
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visits.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
visits:
  - place_id: place-42
    place_name: Coffee
    dwell_ms: 5
    pause_ms: 5
  - place_id: place-7
    place_name: Gym
    dwell_ms: 5
`), 0o600))

	script, err := LoadScript(path)
	require.NoError(t, err)
	require.Len(t, script.Visits, 2)
	assert.Equal(t, "place-42", script.Visits[0].PlaceID)
	assert.Equal(t, 5, script.Visits[0].DwellMs)
}

func TestLoadScript_Missing(t *testing.T) {
	_, err := LoadScript(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScript_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("visits: []"), 0o600))

	_, err := LoadScript(path)
	assert.Error(t, err)
}

func TestReplaySDK_RequiresAPIKey(t *testing.T) {
	sdk := NewReplaySDK(nil, testLogger())

	assert.Error(t, sdk.SetAPIKey(""))
	assert.Error(t, sdk.Start())

	require.NoError(t, sdk.SetAPIKey("abc123"))
	require.NoError(t, sdk.Start())
	t.Cleanup(func() { _ = sdk.Stop() })
}

func TestReplaySDK_ReplaysScript(t *testing.T) {
	script := &Script{Visits: []ReplayStep{
		{PlaceID: "place-42", PlaceName: "Coffee", DwellMs: 5, PauseMs: 1},
		{PlaceID: "place-7", PlaceName: "Gym", DwellMs: 5},
	}}

	sdk := NewReplaySDK(script, testLogger())
	rec := &recPlaceListener{}
	sdk.AddListener(rec)

	require.NoError(t, sdk.SetAPIKey("abc123"))
	require.NoError(t, sdk.Start())

	assert.Eventually(t, func() bool {
		starts, ends := rec.counts()
		return starts == 2 && ends == 2
	}, 5*time.Second, 10*time.Millisecond)

	rec.mu.Lock()
	assert.Equal(t, "place-42", rec.starts[0].Place.Identifier)
	assert.Equal(t, "Coffee", rec.starts[0].Place.Name)
	assert.Equal(t, "place-7", rec.starts[1].Place.Identifier)
	assert.False(t, rec.ends[0].DepartureAt.IsZero())
	rec.mu.Unlock()

	// The SDK stops itself once the script is exhausted.
	assert.Eventually(t, func() bool { return !sdk.IsStarted() },
		5*time.Second, 10*time.Millisecond)
	assert.ErrorIs(t, sdk.Stop(), ErrNotStarted)
}

func TestReplaySDK_StopHaltsReplay(t *testing.T) {
	script := &Script{Visits: []ReplayStep{
		{PlaceID: "place-42", DwellMs: 60_000},
	}}

	sdk := NewReplaySDK(script, testLogger())
	rec := &recPlaceListener{}
	sdk.AddListener(rec)

	require.NoError(t, sdk.SetAPIKey("abc123"))
	require.NoError(t, sdk.Start())

	assert.Eventually(t, func() bool {
		starts, _ := rec.counts()
		return starts == 1
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, sdk.Stop())
	assert.False(t, sdk.IsStarted())

	_, ends := rec.counts()
	assert.Zero(t, ends)
	assert.ErrorIs(t, sdk.Stop(), ErrNotStarted)
}

func TestReplaySDK_RemoveListener(t *testing.T) {
	sdk := NewReplaySDK(nil, testLogger())
	rec := &recPlaceListener{}

	sdk.AddListener(rec)
	sdk.RemoveListener(rec)

	require.NoError(t, sdk.SetAPIKey("abc123"))
	require.NoError(t, sdk.Start())
	t.Cleanup(func() { _ = sdk.Stop() })

	starts, _ := rec.counts()
	assert.Zero(t, starts)
}

func TestReplaySDK_InstanceIdentifierStable(t *testing.T) {
	sdk := NewReplaySDK(nil, testLogger())
	id := sdk.ApplicationInstanceIdentifier()
	assert.NotEmpty(t, id)
	assert.Equal(t, id, sdk.ApplicationInstanceIdentifier())
}

func TestReplaySDK_DeviceAttributes(t *testing.T) {
	sdk := NewReplaySDK(nil, testLogger())
	assert.Empty(t, sdk.DeviceAttributes())

	require.NoError(t, sdk.SetDeviceAttributes(map[string]string{"tier": "gold"}))
	assert.Equal(t, map[string]string{"tier": "gold"}, sdk.DeviceAttributes())
}
