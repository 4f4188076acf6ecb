// Package display projects the watchlist document into the launcher's
// script-filter JSON items and keeps the subtitle/modifier conventions the
// menu front end expects.
package display

import (
	"encoding/json"
	"strconv"

	"watchkeep/internal/watchlist"
)

const separator = " 𐄁 "

// Mod describes a modifier-key variant of an item.
type Mod struct {
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg,omitempty"`
	Valid    *bool  `json:"valid,omitempty"`
}

// Item is one script-filter row.
type Item struct {
	Title        string            `json:"title"`
	Subtitle     string            `json:"subtitle,omitempty"`
	Arg          string            `json:"arg,omitempty"`
	QuicklookURL string            `json:"quicklookurl,omitempty"`
	Valid        *bool             `json:"valid,omitempty"`
	Mods         map[string]Mod    `json:"mods,omitempty"`
	Action       map[string]string `json:"action,omitempty"`
}

// Feedback is the script-filter envelope.
type Feedback struct {
	Items []Item `json:"items"`
}

// JSON renders the feedback for the launcher.
func (f Feedback) JSON() ([]byte, error) {
	return json.Marshal(f)
}

// ToWatch projects the to-watch list under the given sort key.
func ToWatch(doc *watchlist.Document, key watchlist.SortKey, preferActionURL bool) Feedback {
	if len(doc.ToWatch) == 0 {
		return placeholder("Play (wlp)", "Nothing to watch")
	}

	entries := watchlist.Sorted(doc.ToWatch, key)
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, toWatchItem(entry, preferActionURL))
	}
	return Feedback{Items: items}
}

func toWatchItem(entry watchlist.Entry, preferActionURL bool) Item {
	item := Item{
		Title:  entry.Name,
		Arg:    entry.ID,
		Mods:   map[string]Mod{},
		Action: map[string]string{},
	}

	countPrefix := ""
	if entry.Count != nil {
		countPrefix = "(" + strconv.Itoa(*entry.Count) + ")" + separator
	}

	if url := entry.URLValue(); url == "" {
		item.Mods["ctrl"] = invalidMod("This item has no origin url")
	} else {
		item.Mods["ctrl"] = Mod{Subtitle: url, Arg: url}
	}

	switch entry.Kind {
	case watchlist.KindFile:
		item.Subtitle = countPrefix + entry.Duration.HumanValue() + separator + entry.Size.HumanValue() + separator + entry.PathValue()
		item.QuicklookURL = entry.PathValue()
		item.Mods["alt"] = invalidMod("This modifier is only available on series and streams")
		if preferActionURL && entry.URLValue() != "" {
			item.Action["auto"] = entry.URLValue()
		} else {
			item.Action["auto"] = entry.PathValue()
		}

	case watchlist.KindSeries:
		item.Subtitle = countPrefix + entry.Duration.HumanValue() + separator + entry.Size.HumanValue() + separator + entry.PathValue()
		item.Mods["alt"] = Mod{Subtitle: "Rescan series"}
		item.Action["file"] = entry.PathValue()

	case watchlist.KindStream:
		item.Subtitle = "≈ " + countPrefix + entry.Duration.HumanValue() + separator + entry.URLValue()
		item.QuicklookURL = entry.URLValue()
		item.Mods["alt"] = Mod{Subtitle: "Download stream"}
		item.Action["url"] = entry.URLValue()
	}

	return item
}

// Watched projects the watched history in recency order.
func Watched(doc *watchlist.Document) Feedback {
	if len(doc.Watched) == 0 {
		return placeholder("Mark unwatched (wlu)", "You have no unwatched files")
	}

	items := make([]Item, 0, len(doc.Watched))
	for _, entry := range doc.Watched {
		item := Item{
			Title:  entry.Name,
			Arg:    entry.ID,
			Mods:   map[string]Mod{},
			Action: map[string]string{},
		}

		if url := entry.URLValue(); url == "" {
			item.Subtitle = entry.PathValue()
			item.Mods["ctrl"] = invalidMod("This item has no origin url")
			item.Mods["alt"] = invalidMod("This item has no origin url")
		} else {
			if entry.Kind == watchlist.KindStream {
				item.Subtitle = url
			} else {
				item.Subtitle = url + separator + entry.PathValue()
			}
			item.QuicklookURL = url
			item.Mods["ctrl"] = Mod{Subtitle: "Open link in default browser", Arg: url}
			item.Mods["alt"] = Mod{Subtitle: "Copy link to clipboard", Arg: url}
			item.Action["url"] = url
		}

		items = append(items, item)
	}
	return Feedback{Items: items}
}

func placeholder(title, subtitle string) Feedback {
	invalid := false
	return Feedback{Items: []Item{{Title: title, Subtitle: subtitle, Valid: &invalid}}}
}

func invalidMod(subtitle string) Mod {
	invalid := false
	return Mod{Subtitle: subtitle, Valid: &invalid}
}
