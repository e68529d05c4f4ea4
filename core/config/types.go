// Package config defines the YAML configuration consumed by the geobridge
// CLI harness.
package config

// FileConfig is the root of the harness configuration file.
type FileConfig struct {
	// APIKey is the places SDK API key the adapter starts with.
	APIKey string `yaml:"api_key"`
	// VisitScript is the path of the scripted visit schedule the replay
	// SDK plays back.
	VisitScript string `yaml:"visit_script"`
	Store       Store  `yaml:"store"`
	Events      Events `yaml:"events"`
	Log         Log    `yaml:"log"`
}

// Store selects and configures the adapter-state backend.
type Store struct {
	// Backend is one of "memory", "file", or "redis". Empty means memory.
	Backend string `yaml:"backend"`
	// Path is the state file location for the file backend.
	Path string `yaml:"path"`
	// RedisAddr is the host:port for the redis backend.
	RedisAddr string `yaml:"redis_addr"`
}

// Events configures boundary-event forwarding.
type Events struct {
	// PerSecond caps forwarded events when positive; zero disables the cap.
	PerSecond float64 `yaml:"per_second"`
	// Burst is the limiter burst; defaults to 1.
	Burst int `yaml:"burst"`
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
