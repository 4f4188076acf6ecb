package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"watchkeep/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	if cfg.Lists.MaximumWatched != 9 {
		t.Fatalf("expected default maximum_watched 9, got %d", cfg.Lists.MaximumWatched)
	}
	if cfg.QuickPlaylist.TTLMinutes != 3 {
		t.Fatalf("expected default ttl_minutes 3, got %d", cfg.QuickPlaylist.TTLMinutes)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing config file")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.Notifications.Command != "notify-send" {
		t.Fatalf("unexpected default notify command: %q", cfg.Notifications.Command)
	}
}

func TestLoadExpandsAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
lists_dir = "` + filepath.Join(dir, "lists") + `"
move_on_add = "~/incoming"

[lists]
maximum_watched = 4
trash_on_watched = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Lists.MaximumWatched != 4 {
		t.Fatalf("expected maximum_watched 4, got %d", cfg.Lists.MaximumWatched)
	}
	if !cfg.Lists.TrashOnWatched {
		t.Fatal("expected trash_on_watched true")
	}
	if strings.HasPrefix(cfg.Paths.MoveOnAdd, "~") {
		t.Fatalf("expected move_on_add to be expanded, got %q", cfg.Paths.MoveOnAdd)
	}
	if got := cfg.ListsFile(); got != filepath.Join(dir, "lists", "watchlist.json") {
		t.Fatalf("unexpected lists file: %q", got)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[lists]
maximum_watched = 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for maximum_watched = 0")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[lists]") {
		t.Fatal("sample config missing [lists] section")
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
}
