package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"watchkeep/internal/config"
	"watchkeep/internal/testsupport"
	"watchkeep/internal/watchlist"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	content := fmt.Sprintf(`[paths]
lists_dir = %q
cache_dir = %q
log_dir = %q

[notifications]
enabled = false
`, filepath.Join(base, "lists"), filepath.Join(base, "cache"), filepath.Join(base, "logs"))

	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func seedStore(t *testing.T, configPath string, entries ...watchlist.Entry) {
	t.Helper()
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	store := testsupport.MustOpenStore(t, cfg)
	for _, entry := range entries {
		testsupport.SeedEntry(t, store, entry, watchlist.ListToWatch)
	}
}

func runCommand(t *testing.T, configPath string, stdin string, args ...string) (string, error) {
	t.Helper()
	root, _ := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestOrderShowAndApply(t *testing.T) {
	configPath := writeTestConfig(t)
	seedStore(t, configPath,
		testsupport.FileEntry("aaa", "first", "/m/first.mkv", 60, 1),
		testsupport.FileEntry("bbb", "second", "/m/second.mkv", 60, 1),
	)

	out, err := runCommand(t, configPath, "", "order", "show")
	if err != nil {
		t.Fatalf("order show: %v", err)
	}
	if out != "aaa: first\nbbb: second" {
		t.Fatalf("unexpected order output: %q", out)
	}

	if _, err := runCommand(t, configPath, "bbb: second\naaa: first\n", "order", "apply"); err != nil {
		t.Fatalf("order apply: %v", err)
	}

	out, err = runCommand(t, configPath, "", "order", "show")
	if err != nil {
		t.Fatalf("order show after apply: %v", err)
	}
	if out != "bbb: second\naaa: first" {
		t.Fatalf("apply did not reorder: %q", out)
	}
}

func TestOrderApplyRejectsUnknownID(t *testing.T) {
	configPath := writeTestConfig(t)
	seedStore(t, configPath, testsupport.FileEntry("aaa", "first", "/m/first.mkv", 60, 1))

	if _, err := runCommand(t, configPath, "zzz: phantom\n", "order", "apply"); err == nil {
		t.Fatal("expected unknown id to be rejected")
	}
}

func TestListJSONOutput(t *testing.T) {
	configPath := writeTestConfig(t)
	seedStore(t, configPath, testsupport.FileEntry("aaa", "movie", "/m/movie.mkv", 3723, 1024))

	out, err := runCommand(t, configPath, "", "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var feedback struct {
		Items []struct {
			Title string `json:"title"`
			Arg   string `json:"arg"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(out), &feedback); err != nil {
		t.Fatalf("output is not script-filter JSON: %v\n%s", err, out)
	}
	if len(feedback.Items) != 1 || feedback.Items[0].Title != "movie" || feedback.Items[0].Arg != "aaa" {
		t.Fatalf("unexpected feedback: %+v", feedback)
	}
}

func TestListJSONEmptyPlaceholder(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := runCommand(t, configPath, "", "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Nothing to watch") {
		t.Fatalf("missing placeholder: %q", out)
	}
}

func TestListRejectsUnknownSortKey(t *testing.T) {
	configPath := writeTestConfig(t)
	if _, err := runCommand(t, configPath, "", "list", "--json", "--sort", "by_mood"); err == nil {
		t.Fatal("expected unknown sort key to be rejected")
	}
}

func TestDeleteCommand(t *testing.T) {
	configPath := writeTestConfig(t)
	seedStore(t, configPath, testsupport.FileEntry("aaa", "movie", "/m/movie.mkv", 60, 1))

	if _, err := runCommand(t, configPath, "", "delete", "aaa"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	out, err := runCommand(t, configPath, "", "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Nothing to watch") {
		t.Fatalf("entry survived delete: %q", out)
	}
}

func TestDeleteUnknownIDFails(t *testing.T) {
	configPath := writeTestConfig(t)
	if _, err := runCommand(t, configPath, "", "delete", "nope"); err == nil {
		t.Fatal("expected delete of unknown id to fail")
	}
}

func TestIsURL(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/v": true,
		"http://example.com/v":  true,
		"/media/movie.mkv":      false,
		"movie.mkv":             false,
		"ftp://example.com/v":   false,
	}
	for target, want := range cases {
		if got := isURL(target); got != want {
			t.Errorf("isURL(%q) = %v, want %v", target, got, want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"ID", "Name", "Size"},
		[][]string{{"aaa", "movie", "1.0 GiB"}},
		2,
	)
	if !strings.Contains(out, "movie") || !strings.Contains(out, "1.0 GiB") {
		t.Fatalf("row content missing:\n%s", out)
	}
	if !strings.Contains(out, "ID") {
		t.Fatalf("header missing:\n%s", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) < 4 {
		t.Fatalf("expected bordered table, got:\n%s", out)
	}
}
