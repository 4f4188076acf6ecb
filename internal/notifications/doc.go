// Package notifications surfaces watchlist events to the desktop. Every
// error an invocation dies with also goes through here, so failures are
// visible even when no terminal is attached.
package notifications
