// Package config loads, normalizes, and validates watchkeep configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: list and cache directories, playback policies, trash
// behavior, and notification settings. Always obtain settings through this
// package so downstream code receives sanitized paths and clear validation
// errors.
package config
