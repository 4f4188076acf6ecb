package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	ListsDir  string `toml:"lists_dir"`
	CacheDir  string `toml:"cache_dir"`
	LogDir    string `toml:"log_dir"`
	MoveOnAdd string `toml:"move_on_add"`
}

// Lists contains policies governing the two watchlist lists.
type Lists struct {
	MaximumWatched  int  `toml:"maximum_watched"`
	PrependNew      bool `toml:"prepend_new"`
	TopOnPlay       bool `toml:"top_on_play"`
	TrashOnWatched  bool `toml:"trash_on_watched"`
	PreferActionURL bool `toml:"prefer_action_url"`
}

// Playback contains external player configuration.
type Playback struct {
	PlayerCommand     string   `toml:"player_command"`
	PlayerArgs        []string `toml:"player_args"`
	RemotePlayCommand string   `toml:"remote_play_command"`
	RemotePlayArgs    []string `toml:"remote_play_args"`
}

// QuickPlaylist contains the transient playlist batching settings.
type QuickPlaylist struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// Trash contains configuration for recoverable deletion.
type Trash struct {
	Dir string `toml:"dir"`
}

// Notifications contains configuration for desktop notifications.
type Notifications struct {
	Enabled      bool   `toml:"enabled"`
	Command      string `toml:"command"`
	SoundCommand string `toml:"sound_command"`
	SoundDir     string `toml:"sound_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for watchkeep.
//
// Configuration sections by subsystem:
//   - Paths: list, cache, and log directories plus the move-on-add target
//   - Lists: watched cap and insertion/playback policies
//   - Playback: external player and remote-play trigger commands
//   - QuickPlaylist: TTL for the transient playback batch
//   - Trash: recoverable-deletion directory override
//   - Notifications: desktop notification command settings
//   - Logging: log format and level
type Config struct {
	Paths         Paths         `toml:"paths"`
	Lists         Lists         `toml:"lists"`
	Playback      Playback      `toml:"playback"`
	QuickPlaylist QuickPlaylist `toml:"quick_playlist"`
	Trash         Trash         `toml:"trash"`
	Notifications Notifications `toml:"notifications"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/watchkeep/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized. It reports the resolved path and
// whether a file was actually found there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("watchkeep.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories every invocation depends on.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.ListsDir, c.Paths.CacheDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ListsFile returns the path of the persisted watchlist document.
func (c *Config) ListsFile() string {
	return filepath.Join(c.Paths.ListsDir, "watchlist.json")
}

// LockFile returns the path of the lock guarding document mutations.
func (c *Config) LockFile() string {
	return filepath.Join(c.Paths.ListsDir, "watchlist.lock")
}

// QuickPlaylistFile returns the path of the transient quick-playlist batch.
func (c *Config) QuickPlaylistFile() string {
	return filepath.Join(c.Paths.CacheDir, "quick_playlist.txt")
}

// FFprobeBinary returns the ffprobe executable name used for metadata probing.
func (c *Config) FFprobeBinary() string {
	return "ffprobe"
}

// YtdlpBinary returns the yt-dlp executable name used for stream resolution.
func (c *Config) YtdlpBinary() string {
	return "yt-dlp"
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
