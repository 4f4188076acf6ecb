package testsupport

import (
	"context"
	"testing"

	"watchkeep/internal/config"
	"watchkeep/internal/watchlist"
)

// MustOpenStore opens a watchlist store for the given config, failing the
// test on error.
func MustOpenStore(t testing.TB, cfg *config.Config) *watchlist.Store {
	t.Helper()
	store, err := watchlist.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

// SeedEntry inserts an entry into the named list.
func SeedEntry(t testing.TB, store *watchlist.Store, entry watchlist.Entry, list watchlist.List) {
	t.Helper()
	err := store.Update(context.Background(), func(doc *watchlist.Document) error {
		doc.Add(entry, list, false)
		return nil
	})
	if err != nil {
		t.Fatalf("seed entry %s: %v", entry.ID, err)
	}
}

// FileEntry builds a file entry with deterministic metadata for tests.
func FileEntry(id, name, path string, durationSeconds, sizeBytes int64) watchlist.Entry {
	return watchlist.NewFileEntry(id, name, path, durationSeconds, sizeBytes, "")
}
