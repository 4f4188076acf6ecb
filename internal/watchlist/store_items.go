package watchlist

// FindIndex returns the position of id within the named list, or -1 when the
// id is absent. Absence is a legitimate outcome callers must handle.
func (d *Document) FindIndex(id string, list List) int {
	entries := *d.ListByName(list)
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns a pointer to the entry with id in the named list, or nil.
func (d *Document) Get(id string, list List) *Entry {
	idx := d.FindIndex(id, list)
	if idx < 0 {
		return nil
	}
	return &(*d.ListByName(list))[idx]
}

// Add inserts entry into the named list, at the head when prepend is set.
func (d *Document) Add(entry Entry, list List, prepend bool) {
	target := d.ListByName(list)
	if prepend {
		*target = append([]Entry{entry}, *target...)
		return
	}
	*target = append(*target, entry)
}

// Delete removes the first entry with id from the named list and reports
// whether anything was removed.
func (d *Document) Delete(id string, list List) bool {
	idx := d.FindIndex(id, list)
	if idx < 0 {
		return false
	}
	target := d.ListByName(list)
	*target = append((*target)[:idx], (*target)[idx+1:]...)
	return true
}

// SwitchList moves the entry with id from one list to the head of the other.
// When the id is gone from the origin list the whole operation aborts with
// ErrNotFound: a second invocation racing on the same entry should fail
// loudly rather than silently succeed twice.
func (d *Document) SwitchList(id string, from, to List) error {
	idx := d.FindIndex(id, from)
	if idx < 0 {
		return Wrap(ErrNotFound, "list", "switch", string(from)+" -> "+string(to), nil)
	}
	entry := (*d.ListByName(from))[idx]
	d.Delete(id, from)
	d.Add(entry, to, true)
	return nil
}

// ApplyWatchedCap truncates the watched list to its first maxWatched entries.
// The list is most-recent-first, so everything beyond the cap is the oldest
// history and is dropped for good.
func (d *Document) ApplyWatchedCap(maxWatched int) {
	if maxWatched < 0 {
		return
	}
	if len(d.Watched) > maxWatched {
		d.Watched = d.Watched[:maxWatched]
	}
}

// ContainsID reports whether id exists in either list.
func (d *Document) ContainsID(id string) bool {
	return d.FindIndex(id, ListToWatch) >= 0 || d.FindIndex(id, ListWatched) >= 0
}
