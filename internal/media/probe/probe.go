package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"watchkeep/internal/fileutil"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index     int    `json:"index"`
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Duration  string `json:"duration"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	FormatName string `json:"format_name"`
}

// Client invokes ffprobe. The zero value uses the binary found on PATH.
type Client struct {
	Binary string
}

// Inspect executes ffprobe against the provided path and decodes the JSON response.
func (c Client) Inspect(ctx context.Context, path string) (Result, error) {
	binary := strings.TrimSpace(c.Binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// DurationSeconds probes the container duration, truncated to whole seconds.
// Returns 0 when the duration cannot be determined.
func (c Client) DurationSeconds(ctx context.Context, path string) int64 {
	result, err := c.Inspect(ctx, path)
	if err != nil {
		return 0
	}
	seconds := parseFloat(result.Format.Duration)
	if math.IsNaN(seconds) || seconds < 0 {
		return 0
	}
	return int64(seconds)
}

// IsAudiovisual reports whether path looks like playable audio or video. A
// known media extension answers without spawning a process; anything else is
// decided by ffprobe finding an audio or video stream.
func (c Client) IsAudiovisual(ctx context.Context, path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := audiovisualExtensions[ext]; ok {
		return true
	}
	if _, ok := nonMediaExtensions[ext]; ok {
		return false
	}

	result, err := c.Inspect(ctx, path)
	if err != nil {
		return false
	}
	for _, stream := range result.Streams {
		switch strings.ToLower(stream.CodecType) {
		case "video", "audio":
			return true
		}
	}
	return false
}

// SizeBytes returns the on-disk size of path, or 0 when it cannot be read.
func SizeBytes(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// OriginURL returns the recorded download origin of path, best-effort.
func OriginURL(path string) string {
	return fileutil.OriginURL(path)
}

var audiovisualExtensions = map[string]struct{}{
	".mkv": {}, ".mp4": {}, ".avi": {}, ".webm": {}, ".mov": {},
	".m4v": {}, ".mpg": {}, ".mpeg": {}, ".wmv": {}, ".flv": {},
	".ts": {}, ".ogv": {},
	".mp3": {}, ".m4a": {}, ".flac": {}, ".ogg": {}, ".opus": {},
	".wav": {}, ".aac": {}, ".wma": {},
}

var nonMediaExtensions = map[string]struct{}{
	".srt": {}, ".sub": {}, ".ass": {}, ".vtt": {}, ".idx": {},
	".nfo": {}, ".txt": {}, ".jpg": {}, ".jpeg": {}, ".png": {},
	".gif": {}, ".pdf": {}, ".zip": {}, ".rar": {}, ".par2": {},
	".sfv": {}, ".db": {}, ".ds_store": {},
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}
