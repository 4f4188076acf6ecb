package display_test

import (
	"encoding/json"
	"strings"
	"testing"

	"watchkeep/internal/display"
	"watchkeep/internal/testsupport"
	"watchkeep/internal/watchlist"
)

func TestToWatchEmptyPlaceholder(t *testing.T) {
	fb := display.ToWatch(watchlist.NewDocument(), watchlist.SortDefault, false)
	if len(fb.Items) != 1 {
		t.Fatalf("expected single placeholder, got %d items", len(fb.Items))
	}
	item := fb.Items[0]
	if item.Title != "Play (wlp)" || item.Subtitle != "Nothing to watch" {
		t.Fatalf("unexpected placeholder: %+v", item)
	}
	if item.Valid == nil || *item.Valid {
		t.Fatal("placeholder must be invalid")
	}
}

func TestWatchedEmptyPlaceholder(t *testing.T) {
	fb := display.Watched(watchlist.NewDocument())
	if len(fb.Items) != 1 || fb.Items[0].Subtitle != "You have no unwatched files" {
		t.Fatalf("unexpected placeholder: %+v", fb.Items)
	}
}

func TestToWatchFileItem(t *testing.T) {
	doc := watchlist.NewDocument()
	doc.Add(testsupport.FileEntry("aaa", "movie", "/m/movie.mkv", 3723, 1_073_741_824), watchlist.ListToWatch, false)

	fb := display.ToWatch(doc, watchlist.SortDefault, false)
	item := fb.Items[0]

	if item.Title != "movie" || item.Arg != "aaa" {
		t.Fatalf("unexpected item identity: %+v", item)
	}
	if item.Subtitle != "1h 2m 3s 𐄁 1.0 GiB 𐄁 /m/movie.mkv" {
		t.Fatalf("unexpected subtitle: %q", item.Subtitle)
	}
	if item.QuicklookURL != "/m/movie.mkv" {
		t.Fatalf("unexpected quicklook: %q", item.QuicklookURL)
	}
	if item.Action["auto"] != "/m/movie.mkv" {
		t.Fatalf("unexpected action: %v", item.Action)
	}
	ctrl := item.Mods["ctrl"]
	if ctrl.Valid == nil || *ctrl.Valid {
		t.Fatal("file without origin url should have an invalid ctrl mod")
	}
	alt := item.Mods["alt"]
	if alt.Valid == nil || *alt.Valid {
		t.Fatal("file alt mod should be invalid")
	}
}

func TestToWatchFilePrefersActionURL(t *testing.T) {
	doc := watchlist.NewDocument()
	doc.Add(watchlist.NewFileEntry("aaa", "movie", "/m/movie.mkv", 60, 100, "https://example.com/src"), watchlist.ListToWatch, false)

	fb := display.ToWatch(doc, watchlist.SortDefault, true)
	item := fb.Items[0]
	if item.Action["auto"] != "https://example.com/src" {
		t.Fatalf("expected origin url action, got %v", item.Action)
	}
	if item.Mods["ctrl"].Arg != "https://example.com/src" {
		t.Fatalf("expected ctrl mod to carry origin url: %+v", item.Mods["ctrl"])
	}
}

func TestToWatchSeriesItem(t *testing.T) {
	doc := watchlist.NewDocument()
	entry := watchlist.NewSeriesEntry("sss", "Show", "/m/show")
	entry.ApplyScan(7, 1500, 2_000_000)
	doc.Add(entry, watchlist.ListToWatch, false)

	fb := display.ToWatch(doc, watchlist.SortDefault, false)
	item := fb.Items[0]

	if !strings.HasPrefix(item.Subtitle, "(7) 𐄁 ") {
		t.Fatalf("missing count prefix: %q", item.Subtitle)
	}
	if item.Mods["alt"].Subtitle != "Rescan series" {
		t.Fatalf("unexpected alt mod: %+v", item.Mods["alt"])
	}
	if item.Action["file"] != "/m/show" {
		t.Fatalf("unexpected action: %v", item.Action)
	}
}

func TestToWatchStreamItem(t *testing.T) {
	doc := watchlist.NewDocument()
	doc.Add(watchlist.NewStreamEntry("sss", "Mix", "https://example.com/p", 4, 5400), watchlist.ListToWatch, false)

	fb := display.ToWatch(doc, watchlist.SortDefault, false)
	item := fb.Items[0]

	if item.Subtitle != "≈ (4) 𐄁 1h 30m 0s 𐄁 https://example.com/p" {
		t.Fatalf("unexpected subtitle: %q", item.Subtitle)
	}
	if item.Mods["alt"].Subtitle != "Download stream" {
		t.Fatalf("unexpected alt mod: %+v", item.Mods["alt"])
	}
	if item.Action["url"] != "https://example.com/p" {
		t.Fatalf("unexpected action: %v", item.Action)
	}
}

func TestToWatchBestRatioNullsLast(t *testing.T) {
	doc := watchlist.NewDocument()
	doc.Add(watchlist.NewSeriesEntry("pending", "Pending", "/m/pending"), watchlist.ListToWatch, false)
	doc.Add(testsupport.FileEntry("rich", "rich", "/m/rich.mkv", 60, 6_000_000), watchlist.ListToWatch, false)

	fb := display.ToWatch(doc, watchlist.SortBestRatio, false)
	if fb.Items[0].Arg != "rich" || fb.Items[1].Arg != "pending" {
		t.Fatalf("null-ratio entry not sorted last: %s, %s", fb.Items[0].Arg, fb.Items[1].Arg)
	}
}

func TestWatchedItemWithOriginURL(t *testing.T) {
	doc := watchlist.NewDocument()
	doc.Add(watchlist.NewFileEntry("aaa", "movie", "/m/movie.mkv", 60, 100, "https://example.com/src"), watchlist.ListWatched, false)

	fb := display.Watched(doc)
	item := fb.Items[0]

	if item.Subtitle != "https://example.com/src 𐄁 /m/movie.mkv" {
		t.Fatalf("unexpected subtitle: %q", item.Subtitle)
	}
	if item.Mods["ctrl"].Subtitle != "Open link in default browser" {
		t.Fatalf("unexpected ctrl mod: %+v", item.Mods["ctrl"])
	}
	if item.Mods["alt"].Subtitle != "Copy link to clipboard" {
		t.Fatalf("unexpected alt mod: %+v", item.Mods["alt"])
	}
}

func TestWatchedItemWithoutURL(t *testing.T) {
	doc := watchlist.NewDocument()
	doc.Add(testsupport.FileEntry("aaa", "movie", "/m/movie.mkv", 60, 100), watchlist.ListWatched, false)

	fb := display.Watched(doc)
	item := fb.Items[0]
	if item.Subtitle != "/m/movie.mkv" {
		t.Fatalf("unexpected subtitle: %q", item.Subtitle)
	}
	if ctrl := item.Mods["ctrl"]; ctrl.Valid == nil || *ctrl.Valid {
		t.Fatal("ctrl mod should be invalid without an origin url")
	}
}

func TestFeedbackJSONOmitsEmptyFields(t *testing.T) {
	fb := display.Feedback{Items: []display.Item{{Title: "only"}}}
	data, err := fb.JSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string][]map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	item := decoded["items"][0]
	if _, present := item["valid"]; present {
		t.Fatal("unset valid flag should be omitted")
	}
	if _, present := item["subtitle"]; present {
		t.Fatal("empty subtitle should be omitted")
	}
}
