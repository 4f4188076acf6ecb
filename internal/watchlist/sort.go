package watchlist

import (
	"fmt"
	"sort"
)

// SortKey selects a display ordering for the to-watch list.
type SortKey string

const (
	SortDefault            SortKey = ""
	SortDurationAscending  SortKey = "duration_ascending"
	SortDurationDescending SortKey = "duration_descending"
	SortSizeAscending      SortKey = "size_ascending"
	SortSizeDescending     SortKey = "size_descending"
	SortBestRatio          SortKey = "best_ratio"
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(value string) (SortKey, error) {
	switch SortKey(value) {
	case SortDefault, SortDurationAscending, SortDurationDescending,
		SortSizeAscending, SortSizeDescending, SortBestRatio:
		return SortKey(value), nil
	}
	return SortDefault, fmt.Errorf("unknown sort key %q", value)
}

// Sorted returns a copy of entries ordered by the given key. Entries whose
// sort value is unknown (null duration, size, or ratio) always sort last,
// regardless of direction. The default key preserves insertion order.
func Sorted(entries []Entry, key SortKey) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	if key == SortDefault {
		return out
	}

	value := func(e Entry) (float64, bool) {
		switch key {
		case SortDurationAscending, SortDurationDescending:
			if e.Duration.Machine == nil {
				return 0, false
			}
			return float64(*e.Duration.Machine), true
		case SortSizeAscending, SortSizeDescending:
			if e.Size.Machine == nil {
				return 0, false
			}
			return float64(*e.Size.Machine), true
		case SortBestRatio:
			if e.Ratio == nil {
				return 0, false
			}
			return *e.Ratio, true
		}
		return 0, false
	}

	descending := key == SortDurationDescending || key == SortSizeDescending || key == SortBestRatio

	sort.SliceStable(out, func(i, j int) bool {
		vi, oki := value(out[i])
		vj, okj := value(out[j])
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		if descending {
			return vi > vj
		}
		return vi < vj
	})
	return out
}
