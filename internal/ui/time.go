package ui

import (
	"fmt"
	"time"
)

// FormatDurationShort formats a duration compactly, like "25m" or "1h30m".
// Sub-second durations keep millisecond precision so short test ticks stay
// readable.
func FormatDurationShort(duration time.Duration) string {
	if duration <= 0 {
		return "0s"
	}
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		if rest := seconds % 60; rest != 0 {
			return fmt.Sprintf("%dm%ds", minutes, rest)
		}
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if rest := minutes % 60; rest != 0 {
		return fmt.Sprintf("%dh%dm", hours, rest)
	}
	return fmt.Sprintf("%dh", hours)
}
