// Package probe wraps the external metadata tools the watchlist depends on:
// ffprobe for durations and audiovisual detection, stat for sizes, and
// extended attributes for origin urls. Unknown values come back as zero
// sentinels, never as errors.
package probe
