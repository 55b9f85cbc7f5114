package shared

import (
	"strings"
)

// RenderActivityLog renders step output lines under an optional title,
// oldest first. If maxEntries > 0, only the most recent maxEntries lines
// are shown; width > 0 truncates each line.
func RenderActivityLog(title string, entries []string, maxEntries, width int) string {
	var builder strings.Builder

	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle != "" {
		builder.WriteString(RenderLabel(trimmedTitle))
		builder.WriteString("\n")

		if len(entries) > 0 {
			builder.WriteString("\n")
		}
	}

	if len(entries) == 0 {
		return builder.String()
	}

	startIdx := 0
	if maxEntries > 0 && maxEntries < len(entries) {
		startIdx = len(entries) - maxEntries
	}

	for i := startIdx; i < len(entries); i++ {
		builder.WriteString("  ")
		builder.WriteString(Truncate(entries[i], width))

		if i < len(entries)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
