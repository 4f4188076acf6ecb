package config

import (
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeTrash(); err != nil {
		return err
	}
	c.normalizeNotifications()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.ListsDir, err = expandPath(valueOr(c.Paths.ListsDir, defaultListsDir)); err != nil {
		return err
	}
	if c.Paths.CacheDir, err = expandPath(valueOr(c.Paths.CacheDir, defaultCacheDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(valueOr(c.Paths.LogDir, defaultLogDir)); err != nil {
		return err
	}
	if move := strings.TrimSpace(c.Paths.MoveOnAdd); move != "" {
		if c.Paths.MoveOnAdd, err = expandPath(move); err != nil {
			return err
		}
	} else {
		c.Paths.MoveOnAdd = ""
	}
	return nil
}

func (c *Config) normalizeTrash() error {
	if dir := strings.TrimSpace(c.Trash.Dir); dir != "" {
		expanded, err := expandPath(dir)
		if err != nil {
			return err
		}
		c.Trash.Dir = expanded
	} else {
		c.Trash.Dir = ""
	}
	return nil
}

func (c *Config) normalizeNotifications() {
	c.Notifications.Command = strings.TrimSpace(c.Notifications.Command)
	c.Notifications.SoundCommand = strings.TrimSpace(c.Notifications.SoundCommand)
	c.Notifications.SoundDir = strings.TrimSpace(c.Notifications.SoundDir)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(valueOr(c.Logging.Format, defaultLogFormat)))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(valueOr(c.Logging.Level, defaultLogLevel)))
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
