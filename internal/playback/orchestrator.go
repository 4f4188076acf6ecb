// Package playback resolves what "play" means for each entry kind, drives
// the external player, and applies the watched/unwatched transitions that
// follow.
package playback

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"watchkeep/internal/config"
	"watchkeep/internal/notifications"
	"watchkeep/internal/player"
	"watchkeep/internal/series"
	"watchkeep/internal/watchlist"
)

// Player launches media and reports whether playback finished successfully.
type Player interface {
	Launch(ctx context.Context, kind, target string) (bool, error)
}

// Trasher moves paths to recoverable deletion and back.
type Trasher interface {
	Move(path string) (string, error)
	Restore(name, dest string) error
}

// Prober is the slice of the metadata prober playback needs.
type Prober interface {
	ListAudiovisual(ctx context.Context, dir string) ([]string, error)
}

// Orchestrator owns the playback state machine. All list transitions run
// through the store's locked transactions; external tools are injected so
// the machine is testable without a player or a real trash.
type Orchestrator struct {
	store     *watchlist.Store
	cfg       *config.Config
	player    Player
	trasher   Trasher
	prober    Prober
	refresher *series.Refresher
	notifier  notifications.Service
	logger    *slog.Logger
}

// New assembles an orchestrator.
func New(store *watchlist.Store, cfg *config.Config, pl Player, tr Trasher, pr Prober, refresher *series.Refresher, notifier notifications.Service, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		store:     store,
		cfg:       cfg,
		player:    pl,
		trasher:   tr,
		prober:    pr,
		refresher: refresher,
		notifier:  notifier,
		logger:    logger,
	}
}

// Play plays the to-watch entry with id. On successful playback files and
// streams are marked watched; series play their first episode and only
// transition once the last one is gone. A failed or aborted playback leaves
// the entry where it was.
func (o *Orchestrator) Play(ctx context.Context, id string) error {
	if o.cfg.Lists.TopOnPlay {
		// Non-semantic bump to the head of the list before playing.
		if err := o.store.Update(ctx, func(doc *watchlist.Document) error {
			return doc.SwitchList(id, watchlist.ListToWatch, watchlist.ListToWatch)
		}); err != nil {
			return err
		}
	}

	doc, err := o.store.Load()
	if err != nil {
		return err
	}
	entry := doc.Get(id, watchlist.ListToWatch)
	if entry == nil {
		return watchlist.Wrap(watchlist.ErrNotFound, "playback", "play", "id "+id, nil)
	}

	switch entry.Kind {
	case watchlist.KindFile:
		ok, err := o.player.Launch(ctx, player.KindFile, entry.PathValue())
		if err != nil || !ok {
			return err
		}
		return o.MarkWatched(ctx, id)

	case watchlist.KindStream:
		ok, err := o.player.Launch(ctx, player.KindStream, entry.URLValue())
		if err != nil || !ok {
			return err
		}
		return o.MarkWatched(ctx, id)

	case watchlist.KindSeries:
		return o.playSeries(ctx, id, *entry)
	}
	return nil
}

func (o *Orchestrator) playSeries(ctx context.Context, id string, entry watchlist.Entry) error {
	dir := entry.PathValue()
	if _, err := os.Stat(dir); err != nil {
		if markErr := o.MarkWatched(ctx, id); markErr != nil {
			return markErr
		}
		return errors.New("marking as watched since the directory no longer exists")
	}

	files, err := o.prober.ListAudiovisual(ctx, dir)
	if err != nil {
		return watchlist.Wrap(watchlist.ErrInvalidPath, "playback", "play series", "scan "+dir, err)
	}
	if len(files) == 0 {
		return o.MarkWatched(ctx, id)
	}

	first := files[0]
	ok, err := o.player.Launch(ctx, player.KindFile, first)
	if err != nil || !ok {
		return err
	}

	// Rescan after playback: the episode may have been deleted by the player
	// or an external tidy-up in the meantime.
	remaining, err := o.prober.ListAudiovisual(ctx, dir)
	if err != nil {
		return watchlist.Wrap(watchlist.ErrInvalidPath, "playback", "play series", "rescan "+dir, err)
	}
	others := make([]string, 0, len(remaining))
	for _, f := range remaining {
		if f != first {
			others = append(others, f)
		}
	}

	if len(others) == 0 {
		return o.MarkWatched(ctx, id)
	}

	if o.cfg.Lists.TrashOnWatched {
		if _, err := o.trasher.Move(first); err != nil {
			return err
		}
	}
	return o.refresher.Refresh(ctx, id)
}

// MarkWatched promotes the entry to the head of the watched history, applies
// the history cap, and, when the trash-on-watched policy is active, sends the
// underlying path to the trash, recording any name the trash forced on it.
func (o *Orchestrator) MarkWatched(ctx context.Context, id string) error {
	var moved watchlist.Entry
	err := o.store.Update(ctx, func(doc *watchlist.Document) error {
		if err := doc.SwitchList(id, watchlist.ListToWatch, watchlist.ListWatched); err != nil {
			return err
		}
		doc.ApplyWatchedCap(o.cfg.Lists.MaximumWatched)
		if entry := doc.Get(id, watchlist.ListWatched); entry != nil {
			moved = *entry
		}
		return nil
	})
	if err != nil {
		return err
	}

	o.logger.Info("marked watched", "id", id, "name", moved.Name, "kind", string(moved.Kind))

	if moved.Kind == watchlist.KindStream {
		_ = o.notifier.NotifyStreamWatched(ctx, moved.Name)
		return nil
	}

	if !o.cfg.Lists.TrashOnWatched {
		return nil
	}

	trashedName, err := o.trasher.Move(moved.PathValue())
	if err != nil {
		return err
	}
	if trashedName == "" || trashedName == filepath.Base(moved.PathValue()) {
		return nil
	}

	// The trash had to rename the item; remember the new identity so a later
	// mark-unwatched can find it.
	return o.store.Update(ctx, func(doc *watchlist.Document) error {
		if entry := doc.Get(id, watchlist.ListWatched); entry != nil {
			entry.TrashedName = trashedName
		}
		return nil
	})
}

// MarkUnwatched demotes the entry back to the head of the to-watch list.
// When trash-on-watched is active it also attempts to recover the trashed
// copy; a failed recovery leaves the entry moved but surfaces the error.
func (o *Orchestrator) MarkUnwatched(ctx context.Context, id string) error {
	var moved watchlist.Entry
	err := o.store.Update(ctx, func(doc *watchlist.Document) error {
		if err := doc.SwitchList(id, watchlist.ListWatched, watchlist.ListToWatch); err != nil {
			return err
		}
		if entry := doc.Get(id, watchlist.ListToWatch); entry != nil {
			moved = *entry
		}
		return nil
	})
	if err != nil {
		return err
	}

	o.logger.Info("marked unwatched", "id", id, "name", moved.Name, "kind", string(moved.Kind))

	if !o.cfg.Lists.TrashOnWatched || moved.Kind == watchlist.KindStream {
		return nil
	}

	trashedName := moved.TrashedName
	if trashedName != "" {
		// The recorded identity is consumed by this restore attempt.
		if err := o.store.Update(ctx, func(doc *watchlist.Document) error {
			if entry := doc.Get(id, watchlist.ListToWatch); entry != nil {
				entry.TrashedName = ""
			}
			return nil
		}); err != nil {
			return err
		}
	} else {
		trashedName = filepath.Base(moved.PathValue())
	}

	if err := o.trasher.Restore(trashedName, moved.PathValue()); err != nil {
		return err
	}
	_ = o.notifier.NotifyRestored(ctx, moved.Name)
	return nil
}

// Download marks the stream entry watched and returns its url for an
// external downloader.
func (o *Orchestrator) Download(ctx context.Context, id string) (string, error) {
	doc, err := o.store.Load()
	if err != nil {
		return "", err
	}
	entry := doc.Get(id, watchlist.ListToWatch)
	if entry == nil {
		return "", watchlist.Wrap(watchlist.ErrNotFound, "playback", "download", "id "+id, nil)
	}
	url := entry.URLValue()
	if err := o.MarkWatched(ctx, id); err != nil {
		return "", err
	}
	return url, nil
}
