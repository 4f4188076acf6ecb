package notifications

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"watchkeep/internal/config"
)

const notifyTitle = "WatchList"

// Sound names passed through to the configured sound player. Resolved
// against the configured sound directory when one is set.
const (
	SoundError    = "error"
	SoundWatched  = "watched"
	SoundRestored = "restored"
)

// Service defines the notification surface exposed to the CLI and the
// playback orchestrator.
type Service interface {
	NotifyAdded(ctx context.Context, name string) error
	NotifyStreamAdded(ctx context.Context, name string) error
	NotifyStreamWatched(ctx context.Context, name string) error
	NotifyRestored(ctx context.Context, name string) error
	NotifyMessage(ctx context.Context, message string) error
	NotifyError(ctx context.Context, err error) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by the configured desktop
// notifier command. When notifications are disabled, a noop implementation
// is returned.
func NewService(cfg *config.Config) Service {
	if !cfg.Notifications.Enabled || cfg.Notifications.Command == "" {
		return noopService{}
	}
	return &execService{
		command:      cfg.Notifications.Command,
		soundCommand: cfg.Notifications.SoundCommand,
		soundDir:     cfg.Notifications.SoundDir,
	}
}

type execService struct {
	command      string
	soundCommand string
	soundDir     string
}

func (s *execService) NotifyAdded(ctx context.Context, name string) error {
	return s.send(ctx, fmt.Sprintf("Added: “%s”", name), "")
}

func (s *execService) NotifyStreamAdded(ctx context.Context, name string) error {
	return s.send(ctx, fmt.Sprintf("Added as stream: “%s”", name), "")
}

func (s *execService) NotifyStreamWatched(ctx context.Context, name string) error {
	return s.send(ctx, fmt.Sprintf("Watched: “%s”", name), SoundWatched)
}

func (s *execService) NotifyRestored(ctx context.Context, name string) error {
	return s.send(ctx, fmt.Sprintf("Restored: “%s”", name), SoundRestored)
}

func (s *execService) NotifyMessage(ctx context.Context, message string) error {
	return s.send(ctx, message, "")
}

func (s *execService) NotifyError(ctx context.Context, err error) error {
	message := "unknown error"
	if err != nil {
		message = strings.TrimSpace(err.Error())
	}
	return s.send(ctx, message, SoundError)
}

func (s *execService) TestNotification(ctx context.Context) error {
	return s.send(ctx, "Notification system test", "")
}

func (s *execService) send(ctx context.Context, message, sound string) error {
	cmd := exec.CommandContext(ctx, s.command, notifyTitle, message)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	s.playSound(ctx, sound)
	return nil
}

// playSound is best-effort: a missing sound player never fails the event.
func (s *execService) playSound(ctx context.Context, sound string) {
	if sound == "" || s.soundCommand == "" || s.soundDir == "" {
		return
	}
	target := filepath.Join(s.soundDir, sound+".oga")
	_ = exec.CommandContext(ctx, s.soundCommand, target).Run()
}

type noopService struct{}

func (noopService) NotifyAdded(context.Context, string) error         { return nil }
func (noopService) NotifyStreamAdded(context.Context, string) error   { return nil }
func (noopService) NotifyStreamWatched(context.Context, string) error { return nil }
func (noopService) NotifyRestored(context.Context, string) error      { return nil }
func (noopService) NotifyMessage(context.Context, string) error       { return nil }
func (noopService) NotifyError(context.Context, error) error          { return nil }
func (noopService) TestNotification(context.Context) error            { return nil }
