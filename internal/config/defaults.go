package config

const (
	defaultListsDir           = "~/.local/share/watchkeep"
	defaultCacheDir           = "~/.cache/watchkeep"
	defaultLogDir             = "~/.local/share/watchkeep/logs"
	defaultMaximumWatched     = 9
	defaultQuickPlaylistTTL   = 3
	defaultNotifyCommand      = "notify-send"
	defaultNotifySoundCommand = "paplay"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ListsDir: defaultListsDir,
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
		},
		Lists: Lists{
			MaximumWatched: defaultMaximumWatched,
		},
		QuickPlaylist: QuickPlaylist{
			TTLMinutes: defaultQuickPlaylistTTL,
		},
		Notifications: Notifications{
			Enabled:      true,
			Command:      defaultNotifyCommand,
			SoundCommand: defaultNotifySoundCommand,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
