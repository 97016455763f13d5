package scan

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// videoDurationSeconds probes a media file's duration with ffprobe.
// Best effort: returns 0 when ffprobe is missing or fails.
func videoDurationSeconds(ctx context.Context, path string) float64 {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return 0
	}
	secs, err := strconv.ParseFloat(strings.TrimSpace(out.String()), 64)
	if err != nil || secs <= 0 {
		return 0
	}
	return secs
}

// videoDuration returns the duration of a media file as H:MM:SS, or ""
// when it cannot be probed.
func videoDuration(ctx context.Context, path string) string {
	secs := videoDurationSeconds(ctx, path)
	if secs == 0 {
		return ""
	}
	return formatDuration(time.Duration(secs * float64(time.Second)))
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// grabFrame extracts a single frame at the given offset, for use as a
// banner. Best effort: returns an error when ffmpeg is unavailable.
func grabFrame(ctx context.Context, videoPath string, seek time.Duration, outPath string) error {
	secs := int(seek.Seconds())
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-ss", fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60),
		"-i", videoPath,
		"-frames:v", "1",
		outPath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg frame grab: %w", err)
	}
	return nil
}
