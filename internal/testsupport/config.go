package testsupport

import (
	"path/filepath"
	"testing"

	"watchkeep/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ListsDir = filepath.Join(base, "lists")
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Trash.Dir = filepath.Join(base, "trash")
	cfg.Notifications.Enabled = false

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithMaximumWatched sets the watched-history cap on the test config.
func WithMaximumWatched(max int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Lists.MaximumWatched = max
	}
}

// WithTrashOnWatched enables the trash-on-watched policy.
func WithTrashOnWatched() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Lists.TrashOnWatched = true
	}
}

// WithTopOnPlay enables the bump-to-top-on-play policy.
func WithTopOnPlay() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Lists.TopOnPlay = true
	}
}

// WithPrependNew makes new entries insert at the head of the to-watch list.
func WithPrependNew() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Lists.PrependNew = true
	}
}
