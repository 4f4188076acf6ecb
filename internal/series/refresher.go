// Package series recomputes a series entry's aggregate metadata by
// rescanning its directory.
package series

import (
	"context"
	"log/slog"

	"watchkeep/internal/watchlist"
)

// Prober is the slice of the metadata prober the refresher needs.
type Prober interface {
	ListAudiovisual(ctx context.Context, dir string) ([]string, error)
	DurationSeconds(ctx context.Context, path string) int64
}

// SizeFunc reports the on-disk size of a path; 0 when unreadable.
type SizeFunc func(path string) int64

// Refresher rescans series directories and persists the refreshed counts and
// representative metadata. Rescans are idempotent: an unchanged directory
// produces an identical entry.
type Refresher struct {
	store  *watchlist.Store
	prober Prober
	size   SizeFunc
	logger *slog.Logger
}

// New builds a refresher around the given store and prober.
func New(store *watchlist.Store, prober Prober, size SizeFunc, logger *slog.Logger) *Refresher {
	return &Refresher{store: store, prober: prober, size: size, logger: logger}
}

// Refresh rescans the series with id and persists the result in place.
func (r *Refresher) Refresh(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(doc *watchlist.Document) error {
		return r.RefreshIn(ctx, doc, id)
	})
}

// RefreshIn applies a rescan to an already-loaded document, for callers that
// batch it with other mutations inside one store transaction.
func (r *Refresher) RefreshIn(ctx context.Context, doc *watchlist.Document, id string) error {
	entry := doc.Get(id, watchlist.ListToWatch)
	if entry == nil {
		return watchlist.Wrap(watchlist.ErrNotFound, "series", "refresh", "id "+id, nil)
	}

	files, err := r.prober.ListAudiovisual(ctx, entry.PathValue())
	if err != nil {
		return watchlist.Wrap(watchlist.ErrInvalidPath, "series", "refresh", "scan "+entry.PathValue(), err)
	}

	if len(files) == 0 {
		entry.ApplyScan(0, 0, 0)
		r.logger.Warn("series directory has no audiovisual files", "id", id, "path", entry.PathValue())
		return nil
	}

	representative := files[0]
	duration := r.prober.DurationSeconds(ctx, representative)
	size := r.size(representative)
	entry.ApplyScan(len(files), duration, size)

	r.logger.Info("series rescanned",
		"id", id,
		"files", len(files),
		"representative", representative,
	)
	return nil
}
