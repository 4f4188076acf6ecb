package probe

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ListAudiovisual walks dir recursively and returns the audiovisual files it
// contains, ordered case-insensitively so "Episode 2" and "episode 10" land
// where a person browsing the directory expects them. The first element is
// the series' representative file.
func (c Client) ListAudiovisual(ctx context.Context, dir string) ([]string, error) {
	var candidates []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(candidates, func(i, j int) bool {
		return collator.CompareString(candidates[i], candidates[j]) < 0
	})

	var files []string
	for _, path := range candidates {
		if c.IsAudiovisual(ctx, path) {
			files = append(files, path)
		}
	}
	return files, nil
}
