package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geobridge/geobridge/core/config"
)

func TestResolveLogSettings_Defaults(t *testing.T) {
	level, format := resolveLogSettings(&config.FileConfig{}, "", "")
	assert.Equal(t, "info", level)
	assert.Equal(t, "console", format)
}

func TestResolveLogSettings_ConfigApplies(t *testing.T) {
	cfg := &config.FileConfig{Log: config.Log{Level: "debug", Format: "json"}}

	level, format := resolveLogSettings(cfg, "", "")
	assert.Equal(t, "debug", level)
	assert.Equal(t, "json", format)
}

func TestResolveLogSettings_FlagsOverrideConfig(t *testing.T) {
	cfg := &config.FileConfig{Log: config.Log{Level: "debug", Format: "json"}}

	level, format := resolveLogSettings(cfg, "warn", "console")
	assert.Equal(t, "warn", level)
	assert.Equal(t, "console", format)
}

func TestResolveLogSettings_PartialOverride(t *testing.T) {
	cfg := &config.FileConfig{Log: config.Log{Level: "debug"}}

	level, format := resolveLogSettings(cfg, "", "json")
	assert.Equal(t, "debug", level)
	assert.Equal(t, "json", format)
}
