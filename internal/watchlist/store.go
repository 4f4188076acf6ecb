package watchlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gofrs/flock"

	"watchkeep/internal/config"
	"watchkeep/internal/fileutil"
)

// Store persists the watchlist document. Every mutation goes through Update,
// which holds an exclusive flock across the whole read-modify-write so two
// invocations racing on the same document serialize instead of clobbering
// each other.
type Store struct {
	path     string
	lockPath string
	lock     *flock.Flock
}

// Open prepares a store rooted at the configured lists directory.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	lockPath := cfg.LockFile()
	return &Store{
		path:     cfg.ListsFile(),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Path returns the location of the persisted document.
func (s *Store) Path() string {
	return s.path
}

// Load reads the current document. A missing file yields the default empty
// document rather than an error.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("read watchlist: %w", err)
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse watchlist: %w", err)
	}
	if doc.ToWatch == nil {
		doc.ToWatch = []Entry{}
	}
	if doc.Watched == nil {
		doc.Watched = []Entry{}
	}
	return doc, nil
}

// Save writes a complete replacement of the document, pretty-printed so the
// file stays hand-editable, via a temp file and atomic rename.
func (s *Store) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode watchlist: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write watchlist: %w", err)
	}
	return nil
}

// Update runs fn against the current document under the exclusive lock and
// persists the result. When fn returns an error nothing is written.
func (s *Store) Update(ctx context.Context, fn func(doc *Document) error) error {
	lockCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	locked, err := s.lock.TryLockContext(lockCtx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("lock watchlist: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock watchlist: could not acquire %s", s.lockPath)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	doc, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.Save(doc)
}
