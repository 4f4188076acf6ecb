package main

import (
	"context"
	"log/slog"

	"watchkeep/internal/config"
	"watchkeep/internal/intake"
	"watchkeep/internal/logging"
	"watchkeep/internal/media/probe"
	"watchkeep/internal/media/ytdlp"
	"watchkeep/internal/notifications"
	"watchkeep/internal/playback"
	"watchkeep/internal/player"
	"watchkeep/internal/quicklist"
	"watchkeep/internal/series"
	"watchkeep/internal/trash"
	"watchkeep/internal/watchlist"
)

// commandContext lazily wires the dependencies every subcommand shares.
type commandContext struct {
	configFlag *string

	cfg      *config.Config
	logger   *slog.Logger
	notifier notifications.Service
	store    *watchlist.Store
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

func (c *commandContext) ensureNotifier() notifications.Service {
	if c.notifier != nil {
		return c.notifier
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil
	}
	c.notifier = notifications.NewService(cfg)
	return c.notifier
}

// notifyError surfaces an invocation-terminating error to the desktop. A nil
// notifier (config failed to load) degrades to stderr-only reporting.
func (c *commandContext) notifyError(ctx context.Context, err error) {
	if notifier := c.ensureNotifier(); notifier != nil {
		_ = notifier.NotifyError(ctx, err)
	}
}

func (c *commandContext) openStore() (*watchlist.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := watchlist.Open(cfg)
	if err != nil {
		return nil, err
	}
	c.store = store
	return store, nil
}

func (c *commandContext) prober() (probe.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return probe.Client{}, err
	}
	return probe.Client{Binary: cfg.FFprobeBinary()}, nil
}

func (c *commandContext) adder() (*intake.Adder, error) {
	store, err := c.openStore()
	if err != nil {
		return nil, err
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	prober, err := c.prober()
	if err != nil {
		return nil, err
	}
	resolver := ytdlp.Client{Binary: cfg.YtdlpBinary()}
	return intake.New(store, cfg, prober, resolver, c.ensureNotifier(), logger), nil
}

func (c *commandContext) refresher() (*series.Refresher, error) {
	store, err := c.openStore()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	prober, err := c.prober()
	if err != nil {
		return nil, err
	}
	return series.New(store, prober, probe.SizeBytes, logger), nil
}

func (c *commandContext) orchestrator() (*playback.Orchestrator, error) {
	store, err := c.openStore()
	if err != nil {
		return nil, err
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	prober, err := c.prober()
	if err != nil {
		return nil, err
	}
	trasher, err := trash.New(cfg)
	if err != nil {
		return nil, err
	}
	refresher, err := c.refresher()
	if err != nil {
		return nil, err
	}
	return playback.New(store, cfg, player.Discover(cfg), trasher, prober, refresher, c.ensureNotifier(), logger), nil
}

func (c *commandContext) batcher() (*quicklist.Batcher, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	return quicklist.New(cfg), nil
}
