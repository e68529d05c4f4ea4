package config

import "fmt"

// Validate checks the configuration for inconsistencies.
func (c *FileConfig) Validate() error {
	switch c.Store.Backend {
	case "", "memory":
	case "file":
		if c.Store.Path == "" {
			return fmt.Errorf("store backend 'file' requires store.path")
		}
	case "redis":
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("store backend 'redis' requires store.redis_addr")
		}
	default:
		return fmt.Errorf("unknown store backend '%s'", c.Store.Backend)
	}

	if c.Events.PerSecond < 0 {
		return fmt.Errorf("events.per_second must not be negative")
	}
	if c.Events.Burst < 0 {
		return fmt.Errorf("events.burst must not be negative")
	}
	return nil
}
