// Package watchlist holds the watchlist document model and its persistence.
//
// The document is two ordered lists of entries, "toWatch" and "watched",
// stored as a single pretty-printed JSON file that is read and rewritten in
// full on every mutation. The Store guards each read-modify-write with an
// exclusive file lock and an atomic rename so concurrent invocations cannot
// interleave partial writes.
package watchlist
