package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_LoadZeroState(t *testing.T) {
	st := NewMemory()

	state, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, State{}, state)
}

func TestMemory_SaveLoadRoundtrip(t *testing.T) {
	st := NewMemory()

	require.NoError(t, st.Save(context.Background(), State{APIKey: "abc123", Started: true}))

	state, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, State{APIKey: "abc123", Started: true}, state)

	// Last writer wins.
	require.NoError(t, st.Save(context.Background(), State{APIKey: "abc123", Started: false}))
	state, err = st.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, state.Started)
}

func TestFile_LoadMissingFile(t *testing.T) {
	st := NewFile(filepath.Join(t.TempDir(), "state.yaml"))

	state, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, State{}, state)
}

func TestFile_SaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geobridge", "state.yaml")
	st := NewFile(path)

	require.NoError(t, st.Save(context.Background(), State{APIKey: "abc123", Started: true}))

	// A fresh store over the same path sees the persisted state.
	state, err := NewFile(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, State{APIKey: "abc123", Started: true}, state)
}

func TestFile_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.yaml")
	st := NewFile(path)

	require.NoError(t, st.Save(context.Background(), State{APIKey: "abc123"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.yaml", entries[0].Name())
}

func TestFile_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := NewFile(path).Load(context.Background())
	assert.Error(t, err)
}

func TestRedis_SaveLoadRoundtrip(t *testing.T) {
	addr := os.Getenv("GEOBRIDGE_TEST_REDIS")
	if addr == "" {
		t.Skip("GEOBRIDGE_TEST_REDIS not set, skipping redis store test")
	}

	st, err := NewRedis(context.Background(), addr)
	require.NoError(t, err)
	defer func() { _ = st.Close() }()

	require.NoError(t, st.Save(context.Background(), State{APIKey: "abc123", Started: true}))

	state, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, State{APIKey: "abc123", Started: true}, state)
}
