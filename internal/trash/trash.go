// Package trash moves files and directories into the XDG user trash and
// restores them, keeping the renamed identity a collision forces on them.
package trash

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"watchkeep/internal/config"
	"watchkeep/internal/watchlist"
)

// Trash wraps a trash directory laid out per the freedesktop spec, with
// files/ holding the trashed items and info/ their sidecars.
type Trash struct {
	root string
}

// New resolves the trash directory: the configured override when set,
// otherwise the XDG user trash.
func New(cfg *config.Config) (*Trash, error) {
	root := strings.TrimSpace(cfg.Trash.Dir)
	if root == "" {
		dataHome := strings.TrimSpace(os.Getenv("XDG_DATA_HOME"))
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolve home directory: %w", err)
			}
			dataHome = filepath.Join(home, ".local", "share")
		}
		root = filepath.Join(dataHome, "Trash")
	}
	return &Trash{root: root}, nil
}

// Root returns the resolved trash directory.
func (t *Trash) Root() string {
	return t.root
}

func (t *Trash) filesDir() string {
	return filepath.Join(t.root, "files")
}

func (t *Trash) infoDir() string {
	return filepath.Join(t.root, "info")
}

// Move sends path to the trash and returns the name it was stored under,
// which differs from the original base name when the trash already held an
// item of that name. A missing path is a no-op returning "".
func (t *Trash) Move(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat %q: %w", path, err)
	}

	for _, dir := range []string{t.filesDir(), t.infoDir()} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("create trash directory %q: %w", dir, err)
		}
	}

	name := t.availableName(filepath.Base(path))
	target := filepath.Join(t.filesDir(), name)
	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("trash %q: %w", path, err)
	}

	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		url.PathEscape(path), time.Now().Format("2006-01-02T15:04:05"))
	if err := os.WriteFile(filepath.Join(t.infoDir(), name+".trashinfo"), []byte(info), 0o600); err != nil {
		return name, fmt.Errorf("write trash sidecar for %q: %w", name, err)
	}
	return name, nil
}

// Restore moves the trashed item stored under name back to dest.
func (t *Trash) Restore(name, dest string) error {
	trashedPath := filepath.Join(t.filesDir(), name)
	if _, err := os.Stat(trashedPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return watchlist.Wrap(watchlist.ErrNotFoundInTrash, "trash", "restore", "could not find "+name+" in trash", nil)
		}
		return fmt.Errorf("stat trashed item %q: %w", name, err)
	}
	if _, err := os.Stat(dest); err == nil {
		return watchlist.Wrap(watchlist.ErrRestoreConflict, "trash", "restore", "another item exists at "+dest, nil)
	}

	if err := os.Rename(trashedPath, dest); err != nil {
		return fmt.Errorf("restore %q: %w", name, err)
	}
	_ = os.Remove(filepath.Join(t.infoDir(), name+".trashinfo"))
	return nil
}

func (t *Trash) availableName(name string) string {
	candidate := name
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(t.filesDir(), candidate)); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
		candidate = fmt.Sprintf("%s.%d%s", stem, i, ext)
	}
}
