package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geobridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFileConfig_Valid(t *testing.T) {
	path := writeConfig(t, `
api_key: abc123
visit_script: visits.yaml
store:
  backend: file
  path: /tmp/geobridge/state.yaml
events:
  per_second: 2.5
  burst: 4
log:
  level: debug
  format: json
`)

	cfg, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.APIKey)
	assert.Equal(t, "visits.yaml", cfg.VisitScript)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Equal(t, "/tmp/geobridge/state.yaml", cfg.Store.Path)
	assert.Equal(t, 2.5, cfg.Events.PerSecond)
	assert.Equal(t, 4, cfg.Events.Burst)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileConfig_MissingFile(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileConfig_BadYAML(t *testing.T) {
	path := writeConfig(t, "api_key: [unclosed")
	_, err := LoadFileConfig(path)
	assert.Error(t, err)
}

func TestValidate_DefaultsToMemoryBackend(t *testing.T) {
	cfg := &FileConfig{}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_FileBackendRequiresPath(t *testing.T) {
	cfg := &FileConfig{Store: Store{Backend: "file"}}
	assert.Error(t, cfg.Validate())

	cfg.Store.Path = "/tmp/state.yaml"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RedisBackendRequiresAddr(t *testing.T) {
	cfg := &FileConfig{Store: Store{Backend: "redis"}}
	assert.Error(t, cfg.Validate())

	cfg.Store.RedisAddr = "127.0.0.1:6379"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := &FileConfig{Store: Store{Backend: "etcd"}}
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeRate(t *testing.T) {
	cfg := &FileConfig{Events: Events{PerSecond: -1}}
	assert.Error(t, cfg.Validate())
}
