package stats

import (
	"fmt"
	"strconv"
	"strings"
)

const zeroDuration = "00:00:00"

// parseDurationSeconds converts an HH:MM:SS string to seconds. Anything
// malformed counts as zero.
func parseDurationSeconds(duration string) int {
	parts := strings.Split(duration, ":")
	if len(parts) != 3 {
		return 0
	}

	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	seconds, _ := strconv.Atoi(parts[2])

	return hours*3600 + minutes*60 + seconds
}

func formatDuration(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// averageDuration returns the mean of the parsed durations re-encoded as
// HH:MM:SS, or 00:00:00 when the list is empty.
func averageDuration(durations []string) string {
	if len(durations) == 0 {
		return zeroDuration
	}

	total := 0
	for _, duration := range durations {
		total += parseDurationSeconds(duration)
	}

	return formatDuration(total / len(durations))
}
