package shared

import (
	"fmt"
	"time"
)

// FormatDuration formats a step duration for display (e.g., "12ms", "1.5s", "2m 30s").
func FormatDuration(duration time.Duration) string {
	switch {
	case duration < time.Millisecond:
		return fmt.Sprintf("%dµs", duration.Microseconds())
	case duration < time.Second:
		return fmt.Sprintf("%dms", duration.Milliseconds())
	case duration < time.Minute:
		return fmt.Sprintf("%.1fs", duration.Seconds())
	}

	duration = duration.Round(time.Second)
	hours := duration / time.Hour
	duration %= time.Hour
	minutes := duration / time.Minute
	duration %= time.Minute
	seconds := duration / time.Second

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// Truncate shortens text to width cells, marking the cut with an ellipsis.
// A width of zero or less disables truncation.
func Truncate(text string, width int) string {
	runes := []rune(text)
	if width <= 0 || len(runes) <= width {
		return text
	}

	if width <= ellipsisLength {
		return string(runes[:width])
	}

	return string(runes[:width-ellipsisLength]) + "..."
}

const ellipsisLength = 3
