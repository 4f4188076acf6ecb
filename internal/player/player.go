// Package player discovers and drives the external media player. Running the
// player CLI directly (instead of a desktop launcher) exposes its exit
// status, so playback is only treated as finished when the player reports
// success.
package player

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"watchkeep/internal/config"
	"watchkeep/internal/watchlist"
)

// Target kinds for Launch.
const (
	KindFile   = "file"
	KindStream = "stream"
)

// Player launches media in a discovered or configured external player.
type Player struct {
	command string
	args    []string
}

// Discover resolves the player command: an explicit configuration wins,
// otherwise mpv then vlc are searched on PATH. A nil command in the returned
// player means only the desktop opener fallback is available.
func Discover(cfg *config.Config) *Player {
	if command := strings.TrimSpace(cfg.Playback.PlayerCommand); command != "" {
		return &Player{command: command, args: cfg.Playback.PlayerArgs}
	}
	if path, err := exec.LookPath("mpv"); err == nil {
		return &Player{command: path, args: []string{"--no-terminal"}}
	}
	if path, err := exec.LookPath("vlc"); err == nil {
		return &Player{command: path, args: []string{"--play-and-exit"}}
	}
	return &Player{}
}

// Launch plays target synchronously and reports whether the player exited
// successfully. A missing local target counts as success so a file deleted
// out from under the list can still be marked watched. Streams require a
// real player; there is no desktop-opener fallback with a usable exit code.
func (p *Player) Launch(ctx context.Context, kind, target string) (bool, error) {
	if target == "" {
		return true, nil
	}
	if kind != KindStream {
		if _, err := os.Stat(target); err != nil {
			return true, nil
		}
	}

	if p.command == "" {
		if kind == KindStream {
			return false, watchlist.Wrap(watchlist.ErrExternalTool, "player", "launch", "to play a stream you need mpv or vlc", nil)
		}
		cmd := exec.CommandContext(ctx, "xdg-open", target)
		if err := cmd.Run(); err != nil {
			return false, nil
		}
		return true, nil
	}

	args := append(append([]string{}, p.args...), target)
	cmd := exec.CommandContext(ctx, p.command, args...)
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return false, nil
		}
		return false, watchlist.Wrap(watchlist.ErrExternalTool, "player", "launch", p.command, err)
	}
	return true, nil
}

// Command exposes the resolved player binary, mainly for diagnostics.
func (p *Player) Command() string {
	return p.command
}
