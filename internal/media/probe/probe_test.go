package probe_test

import (
	"context"
	"path/filepath"
	"testing"

	"watchkeep/internal/media/probe"
	"watchkeep/internal/testsupport"
)

func TestIsAudiovisualByExtension(t *testing.T) {
	var c probe.Client
	ctx := context.Background()

	for _, path := range []string{"/m/a.mkv", "/m/b.MP4", "/m/c.flac", "/m/d.webm"} {
		if !c.IsAudiovisual(ctx, path) {
			t.Errorf("expected %s to be audiovisual", path)
		}
	}
	for _, path := range []string{"/m/a.srt", "/m/b.nfo", "/m/c.jpg", "/m/d.TXT"} {
		if c.IsAudiovisual(ctx, path) {
			t.Errorf("expected %s to be rejected", path)
		}
	}
}

func TestSizeBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.bin")
	testsupport.WriteFile(t, path, 4096)

	if got := probe.SizeBytes(path); got != 4096 {
		t.Fatalf("SizeBytes = %d, want 4096", got)
	}
	if got := probe.SizeBytes(filepath.Join(t.TempDir(), "missing")); got != 0 {
		t.Fatalf("missing file should size as 0, got %d", got)
	}
}

func TestListAudiovisualFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"b-episode.mkv",
		"A-Episode.mkv",
		"notes.txt",
		"cover.jpg",
		filepath.Join("season2", "finale.mp4"),
	} {
		testsupport.WriteFile(t, filepath.Join(dir, name), 16)
	}

	var c probe.Client
	files, err := c.ListAudiovisual(context.Background(), dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	want := []string{
		filepath.Join(dir, "A-Episode.mkv"),
		filepath.Join(dir, "b-episode.mkv"),
		filepath.Join(dir, "season2", "finale.mp4"),
	}
	if len(files) != len(want) {
		t.Fatalf("unexpected files: %v", files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, files[i], want[i])
		}
	}
}

func TestListAudiovisualCaseInsensitiveOrder(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "Zeta.mkv"), 16)
	testsupport.WriteFile(t, filepath.Join(dir, "alpha.mkv"), 16)

	var c probe.Client
	files, err := c.ListAudiovisual(context.Background(), dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "alpha.mkv" {
		t.Fatalf("case-insensitive order violated: %v", files)
	}
}

func TestListAudiovisualMissingDirectory(t *testing.T) {
	var c probe.Client
	if _, err := c.ListAudiovisual(context.Background(), filepath.Join(t.TempDir(), "gone")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
