// Package intake turns raw user input (a local path or a remote url) into
// watchlist entries, probing the metadata each entry kind needs.
package intake

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"watchkeep/internal/config"
	"watchkeep/internal/fileutil"
	"watchkeep/internal/media/probe"
	"watchkeep/internal/media/ytdlp"
	"watchkeep/internal/notifications"
	"watchkeep/internal/series"
	"watchkeep/internal/watchlist"
)

// Prober is the slice of the metadata prober intake needs.
type Prober interface {
	IsAudiovisual(ctx context.Context, path string) bool
	DurationSeconds(ctx context.Context, path string) int64
	ListAudiovisual(ctx context.Context, dir string) ([]string, error)
}

// Resolver fetches stream metadata for a url.
type Resolver interface {
	Resolve(ctx context.Context, url string, playlist bool) (ytdlp.Metadata, error)
}

// Adder creates new to-watch entries.
type Adder struct {
	store    *watchlist.Store
	cfg      *config.Config
	prober   Prober
	resolver Resolver
	notifier notifications.Service
	logger   *slog.Logger

	// Size and Origin default to the real filesystem probes; tests override.
	Size   func(path string) int64
	Origin func(path string) string
}

// New assembles an adder.
func New(store *watchlist.Store, cfg *config.Config, prober Prober, resolver Resolver, notifier notifications.Service, logger *slog.Logger) *Adder {
	return &Adder{
		store:    store,
		cfg:      cfg,
		prober:   prober,
		resolver: resolver,
		notifier: notifier,
		logger:   logger,
		Size:     probe.SizeBytes,
		Origin:   probe.OriginURL,
	}
}

// AddLocal adds a local file or directory to the to-watch list. The target
// must carry audiovisual content; with move-on-add configured it is first
// relocated into the configured directory.
func (a *Adder) AddLocal(ctx context.Context, path string) (watchlist.Entry, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return watchlist.Entry{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return watchlist.Entry{}, watchlist.Wrap(watchlist.ErrInvalidPath, "intake", "add", "not a valid path: "+path, nil)
	}

	if info.IsDir() {
		files, err := a.prober.ListAudiovisual(ctx, path)
		if err != nil {
			return watchlist.Entry{}, watchlist.Wrap(watchlist.ErrInvalidPath, "intake", "add", "scan "+path, err)
		}
		if len(files) == 0 {
			return watchlist.Entry{}, watchlist.Wrap(watchlist.ErrInvalidPath, "intake", "add", "directory has no audiovisual content", nil)
		}
	} else if !a.prober.IsAudiovisual(ctx, path) {
		return watchlist.Entry{}, watchlist.Wrap(watchlist.ErrInvalidPath, "intake", "add", "is not an audiovisual file", nil)
	}

	if a.cfg.Paths.MoveOnAdd != "" {
		moved, err := fileutil.MoveToDir(path, a.cfg.Paths.MoveOnAdd)
		if err != nil {
			return watchlist.Entry{}, err
		}
		path = moved
	}

	if info.IsDir() {
		return a.addDirectory(ctx, path)
	}
	return a.addFile(ctx, path)
}

func (a *Adder) addFile(ctx context.Context, path string) (watchlist.Entry, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	duration := a.prober.DurationSeconds(ctx, path)
	size := a.Size(path)
	origin := a.Origin(path)

	entry := watchlist.NewFileEntry(watchlist.NewID(), name, path, duration, size, origin)
	err := a.store.Update(ctx, func(doc *watchlist.Document) error {
		doc.Add(entry, watchlist.ListToWatch, a.cfg.Lists.PrependNew)
		return nil
	})
	if err != nil {
		return watchlist.Entry{}, err
	}

	a.logger.Info("added file", "id", entry.ID, "name", name, "duration_seconds", duration)
	_ = a.notifier.NotifyAdded(ctx, name)
	return entry, nil
}

func (a *Adder) addDirectory(ctx context.Context, path string) (watchlist.Entry, error) {
	name := filepath.Base(path)
	entry := watchlist.NewSeriesEntry(watchlist.NewID(), name, path)

	refresher := series.New(a.store, a.prober, a.Size, a.logger)
	err := a.store.Update(ctx, func(doc *watchlist.Document) error {
		doc.Add(entry, watchlist.ListToWatch, a.cfg.Lists.PrependNew)
		return refresher.RefreshIn(ctx, doc, entry.ID)
	})
	if err != nil {
		return watchlist.Entry{}, err
	}

	a.logger.Info("added series", "id", entry.ID, "name", name)
	_ = a.notifier.NotifyAdded(ctx, name)
	return entry, nil
}

// AddURL adds a remote url as a stream entry. With playlist set the url is
// expanded and the summed duration plus item count are recorded.
func (a *Adder) AddURL(ctx context.Context, url string, playlist bool) (watchlist.Entry, error) {
	meta, err := a.resolver.Resolve(ctx, url, playlist)
	if err != nil {
		return watchlist.Entry{}, err
	}

	entry := watchlist.NewStreamEntry(watchlist.NewID(), meta.Name, url, meta.ItemCount, meta.DurationSeconds)
	err = a.store.Update(ctx, func(doc *watchlist.Document) error {
		doc.Add(entry, watchlist.ListToWatch, a.cfg.Lists.PrependNew)
		return nil
	})
	if err != nil {
		return watchlist.Entry{}, err
	}

	a.logger.Info("added stream", "id", entry.ID, "name", meta.Name, "items", meta.ItemCount)
	_ = a.notifier.NotifyStreamAdded(ctx, meta.Name)
	return entry, nil
}
