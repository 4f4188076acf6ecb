// Package ytdlp resolves stream metadata (titles and durations) for remote
// urls by shelling out to yt-dlp.
package ytdlp

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"watchkeep/internal/watchlist"
)

// Metadata describes what a url resolves to.
type Metadata struct {
	// Name is the display name: the playlist title when the url resolved to
	// more than one item, otherwise the single item's title.
	Name string
	// ItemCount is the number of resolved items.
	ItemCount int
	// DurationSeconds is the summed duration over all items; 0 means unknown.
	DurationSeconds int64
}

// Client invokes yt-dlp. The zero value uses the binary found on PATH.
type Client struct {
	Binary string
}

// Resolve fetches titles and durations for url. With playlist set the url is
// expanded to all of its items; otherwise only the first item is considered.
func (c Client) Resolve(ctx context.Context, url string, playlist bool) (Metadata, error) {
	playlistFlag := "--no-playlist"
	if playlist {
		playlistFlag = "--yes-playlist"
	}

	titles, err := c.printLines(ctx, "title", playlistFlag, url)
	if err != nil {
		return Metadata{}, err
	}
	if len(titles) == 0 {
		return Metadata{}, watchlist.Wrap(watchlist.ErrInvalidPath, "ytdlp", "resolve", "could not add url as stream: "+url, nil)
	}

	name := titles[0]
	if len(titles) > 1 {
		// Prefer the playlist's own title over the first item's.
		if playlistNames, err := c.playlistName(ctx, url); err == nil && len(playlistNames) > 0 {
			name = playlistNames[0]
		}
	}

	durationTokens, err := c.printLines(ctx, "duration_string", playlistFlag, url)
	if err != nil || len(durationTokens) == 0 {
		durationTokens, _ = c.printLines(ctx, "duration", playlistFlag, url)
	}

	var total int64
	for _, token := range durationTokens {
		total += ParseDurationToken(token)
	}

	return Metadata{
		Name:            name,
		ItemCount:       len(titles),
		DurationSeconds: total,
	}, nil
}

func (c Client) printLines(ctx context.Context, field string, args ...string) ([]string, error) {
	binary := strings.TrimSpace(c.Binary)
	if binary == "" {
		binary = "yt-dlp"
	}

	cmdArgs := append([]string{"--print", field}, args...)
	cmd := exec.CommandContext(ctx, binary, cmdArgs...)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp %s: %w", field, err)
	}

	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (c Client) playlistName(ctx context.Context, url string) ([]string, error) {
	binary := strings.TrimSpace(c.Binary)
	if binary == "" {
		binary = "yt-dlp"
	}
	cmd := exec.CommandContext(ctx, binary, "--yes-playlist", "--print", "filename", "--output", "%(playlist)s", url)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp playlist name: %w", err)
	}
	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// ParseDurationToken converts a yt-dlp duration token to whole seconds. Both
// plain numbers ("123", "95.2") and colon notation ("1:02:03") are accepted;
// anything unparseable maps to 0.
func ParseDurationToken(token string) int64 {
	token = strings.TrimSpace(token)
	if token == "" || strings.EqualFold(token, "na") {
		return 0
	}

	if strings.Contains(token, ":") {
		var total int64
		for _, segment := range strings.Split(token, ":") {
			value, err := strconv.ParseInt(strings.TrimSpace(segment), 10, 64)
			if err != nil {
				return 0
			}
			total = total*60 + value
		}
		return total
	}

	if seconds, err := strconv.ParseFloat(token, 64); err == nil && seconds > 0 {
		return int64(seconds)
	}
	return 0
}
