package watchlist

import (
	"fmt"
	"strings"
)

// OrderLines renders the to-watch list as editable "id: name" lines, one
// entry per line in display order.
func (d *Document) OrderLines() string {
	lines := make([]string, 0, len(d.ToWatch))
	for _, entry := range d.ToWatch {
		lines = append(lines, entry.ID+": "+entry.Name)
	}
	return strings.Join(lines, "\n")
}

// ApplyOrder replaces the to-watch list order and names from edited "id:
// name" lines. Every id is validated against the current list before anything
// is applied; an unrecognised or repeated id aborts with nothing partially
// committed. Entries missing from the text are dropped from the list.
func (d *Document) ApplyOrder(text string) error {
	var reordered []Entry
	consumed := make(map[string]bool)

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, name, found := strings.Cut(line, ":")
		if !found {
			return fmt.Errorf("malformed order line %q", line)
		}
		id = strings.TrimSpace(id)
		name = strings.TrimSpace(name)

		idx := d.FindIndex(id, ListToWatch)
		if idx < 0 {
			return Wrap(ErrNotFound, "list", "reorder", "unrecognised id "+id, nil)
		}
		if consumed[id] {
			return fmt.Errorf("duplicate order line for id %s", id)
		}
		consumed[id] = true
		entry := d.ToWatch[idx]
		entry.Name = name
		reordered = append(reordered, entry)
	}

	if reordered == nil {
		reordered = []Entry{}
	}
	d.ToWatch = reordered
	return nil
}
