package config

import (
	"fmt"
)

// Validate reports the first configuration problem encountered.
func (c *Config) Validate() error {
	if c.Paths.ListsDir == "" {
		return fmt.Errorf("config: lists_dir must not be empty")
	}
	if c.Paths.CacheDir == "" {
		return fmt.Errorf("config: cache_dir must not be empty")
	}
	if c.Lists.MaximumWatched < 1 {
		return fmt.Errorf("config: maximum_watched must be at least 1, got %d", c.Lists.MaximumWatched)
	}
	if c.QuickPlaylist.TTLMinutes < 1 {
		return fmt.Errorf("config: quick_playlist ttl_minutes must be at least 1, got %d", c.QuickPlaylist.TTLMinutes)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: logging format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
