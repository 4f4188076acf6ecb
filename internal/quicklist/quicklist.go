// Package quicklist batches entry ids for sequential playback. The batch
// lives in a side file with a lazy time-to-live: any access past the TTL
// deletes it, so a forgotten half-built batch never plays hours later.
package quicklist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"watchkeep/internal/config"
)

// Batcher manages the quick-playlist side file.
type Batcher struct {
	path        string
	ttl         time.Duration
	trigger     string
	triggerArgs []string
	now         func() time.Time
}

// New builds a batcher from configuration.
func New(cfg *config.Config) *Batcher {
	return &Batcher{
		path:        cfg.QuickPlaylistFile(),
		ttl:         time.Duration(cfg.QuickPlaylist.TTLMinutes) * time.Minute,
		trigger:     strings.TrimSpace(cfg.Playback.RemotePlayCommand),
		triggerArgs: cfg.Playback.RemotePlayArgs,
		now:         time.Now,
	}
}

// verify reports whether a live batch exists, deleting it when expired.
func (b *Batcher) verify() (bool, error) {
	info, err := os.Stat(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat quick playlist: %w", err)
	}
	if b.now().Sub(info.ModTime()) > b.ttl {
		if err := os.Remove(b.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("expire quick playlist: %w", err)
		}
		return false, nil
	}
	return true, nil
}

// Add appends id to the batch, discarding an expired batch first.
func (b *Batcher) Add(id string) error {
	if _, err := b.verify(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	file, err := os.OpenFile(b.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open quick playlist: %w", err)
	}
	defer file.Close()
	if _, err := file.WriteString(id + "\n"); err != nil {
		return fmt.Errorf("append to quick playlist: %w", err)
	}
	return file.Close()
}

// Drain returns the queued ids and deletes the batch file in one shot. An
// absent or expired batch yields no ids.
func (b *Batcher) Drain() ([]string, error) {
	ok, err := b.verify()
	if err != nil || !ok {
		return nil, err
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("read quick playlist: %w", err)
	}
	if err := os.Remove(b.path); err != nil {
		return nil, fmt.Errorf("drain quick playlist: %w", err)
	}

	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ids = append(ids, line)
		}
	}
	return ids, nil
}

// Play drains the batch and triggers remote playback for each id in order.
// The trigger command is fire-and-forget: playback is not waited on. Returns
// how many ids were triggered.
func (b *Batcher) Play(ctx context.Context) (int, error) {
	live, err := b.verify()
	if err != nil || !live {
		return 0, err
	}
	// Check the trigger before draining so a misconfiguration does not
	// destroy the queued batch.
	if b.trigger == "" {
		return 0, errors.New("quick playlist: no remote_play_command configured")
	}

	ids, err := b.Drain()
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	for _, id := range ids {
		args := append(append([]string{}, b.triggerArgs...), id)
		cmd := exec.CommandContext(ctx, b.trigger, args...)
		if err := cmd.Start(); err != nil {
			return 0, fmt.Errorf("trigger remote play for %s: %w", id, err)
		}
		// Detach; the trigger's own lifetime is not ours to manage.
		go func(c *exec.Cmd) { _ = c.Wait() }(cmd)
	}
	return len(ids), nil
}
