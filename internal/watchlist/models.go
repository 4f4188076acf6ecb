package watchlist

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Kind discriminates the three entry variants.
type Kind string

const (
	KindFile   Kind = "file"
	KindSeries Kind = "series"
	KindStream Kind = "stream"
)

// List names the two top-level lists of the document.
type List string

const (
	ListToWatch List = "toWatch"
	ListWatched List = "watched"
)

// UnknownDurationLabel is shown when a probe could not determine a duration.
// Happens with yt-dlp's generic extractor, e.g. a direct link to an MP4.
const UnknownDurationLabel = "[Unable to Get Duration]"

// Measure pairs a machine-readable value with its human rendering. Nil means
// the value is not known yet (pending series scan) or not applicable (stream
// size); both halves serialize as explicit null then.
type Measure struct {
	Machine *int64  `json:"machine"`
	Human   *string `json:"human"`
}

// HumanValue returns the human rendering, or "" when unset.
func (m Measure) HumanValue() string {
	if m.Human == nil {
		return ""
	}
	return *m.Human
}

// Entry is one watchlist item. Kind decides which fields are meaningful:
// files and series carry Path, streams carry URL, and only series use Count
// as a file count. Nullable fields serialize as explicit null so the on-disk
// document stays hand-editable without surprising key absence.
type Entry struct {
	ID          string   `json:"id"`
	Kind        Kind     `json:"type"`
	Name        string   `json:"name"`
	Path        *string  `json:"path"`
	Count       *int     `json:"count"`
	URL         *string  `json:"url"`
	Duration    Measure  `json:"duration"`
	Size        Measure  `json:"size"`
	Ratio       *float64 `json:"ratio"`
	TrashedName string   `json:"trashed_name,omitempty"`
}

// Document is the whole persisted watchlist. Order within each list is
// significant and preserved by every operation except explicit reordering.
type Document struct {
	ToWatch []Entry `json:"toWatch"`
	Watched []Entry `json:"watched"`
}

// NewDocument returns an empty document with both lists allocated so the
// serialized form always contains both keys.
func NewDocument() *Document {
	return &Document{ToWatch: []Entry{}, Watched: []Entry{}}
}

// ListByName returns a pointer to the named list.
func (d *Document) ListByName(list List) *[]Entry {
	if list == ListWatched {
		return &d.Watched
	}
	return &d.ToWatch
}

// NewID generates a short opaque entry identifier.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// NewFileEntry builds a file entry from probed metadata. A durationSeconds of
// zero is the "unknown" sentinel and leaves the ratio undefined.
func NewFileEntry(id, name, path string, durationSeconds, sizeBytes int64, originURL string) Entry {
	entry := Entry{
		ID:       id,
		Kind:     KindFile,
		Name:     name,
		Path:     ptr(path),
		URL:      optionalString(originURL),
		Duration: NewDurationMeasure(durationSeconds),
		Size:     NewSizeMeasure(sizeBytes),
		Ratio:    deriveRatio(sizeBytes, durationSeconds),
	}
	return entry
}

// NewSeriesEntry builds a series entry in its pending state: counts and
// representative metadata stay null until the first directory scan.
func NewSeriesEntry(id, name, path string) Entry {
	return Entry{
		ID:       id,
		Kind:     KindSeries,
		Name:     name,
		Path:     ptr(path),
		Duration: Measure{Human: ptr("getting duration…")},
		Size:     Measure{Human: ptr("calculating size…")},
	}
}

// NewStreamEntry builds a stream entry. itemCount is only set when the URL
// resolved to a playlist with more than one item; durationSeconds is the sum
// over all sub-items.
func NewStreamEntry(id, name, url string, itemCount int, durationSeconds int64) Entry {
	entry := Entry{
		ID:       id,
		Kind:     KindStream,
		Name:     name,
		URL:      ptr(url),
		Duration: NewDurationMeasure(durationSeconds),
		Size:     Measure{},
	}
	if itemCount > 1 {
		entry.Count = ptr(itemCount)
	}
	return entry
}

// ApplyScan updates a series entry with the results of a directory rescan.
// A scan that found no files leaves the representative metadata null.
func (e *Entry) ApplyScan(fileCount int, durationSeconds, sizeBytes int64) {
	e.Count = ptr(fileCount)
	if fileCount == 0 {
		e.Duration = Measure{Human: ptr(UnknownDurationLabel)}
		e.Size = Measure{}
		e.Ratio = nil
		return
	}
	e.Duration = NewDurationMeasure(durationSeconds)
	e.Size = NewSizeMeasure(sizeBytes)
	e.Ratio = deriveRatio(sizeBytes, durationSeconds)
}

// PathValue returns the entry path or "" when unset.
func (e Entry) PathValue() string {
	if e.Path == nil {
		return ""
	}
	return *e.Path
}

// URLValue returns the origin url or "" when unset.
func (e Entry) URLValue() string {
	if e.URL == nil {
		return ""
	}
	return *e.URL
}

// DurationSeconds returns the machine duration, or 0 when unknown.
func (e Entry) DurationSeconds() int64 {
	if e.Duration.Machine == nil {
		return 0
	}
	return *e.Duration.Machine
}

// NewDurationMeasure renders a duration in seconds alongside its display
// form. Zero is the "unknown" sentinel.
func NewDurationMeasure(seconds int64) Measure {
	return Measure{Machine: ptr(seconds), Human: ptr(FormatDuration(seconds))}
}

// NewSizeMeasure renders a byte count alongside its display form.
func NewSizeMeasure(bytes int64) Measure {
	return Measure{Machine: ptr(bytes), Human: ptr(humanize.IBytes(uint64(max64(bytes, 0))))}
}

// FormatDuration renders seconds as "1h 2m 3s" with leading zero segments
// dropped. Zero maps to the unknown-duration label.
func FormatDuration(totalSeconds int64) string {
	if totalSeconds == 0 {
		return UnknownDurationLabel
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds / 60) % 60
	seconds := totalSeconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, humanizeSegment(hours, "h"))
	}
	if hours > 0 || minutes > 0 {
		parts = append(parts, humanizeSegment(minutes, "m"))
	}
	parts = append(parts, humanizeSegment(seconds, "s"))
	return strings.Join(parts, " ")
}

func humanizeSegment(value int64, unit string) string {
	return humanize.Comma(value) + unit
}

func deriveRatio(sizeBytes, durationSeconds int64) *float64 {
	if durationSeconds <= 0 {
		return nil
	}
	ratio := float64(sizeBytes) / float64(durationSeconds)
	return &ratio
}

func optionalString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func ptr[T any](v T) *T {
	return &v
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
