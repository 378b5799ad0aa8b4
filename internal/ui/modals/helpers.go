package modals

import (
	"github.com/charmbracelet/x/ansi"
)

// TruncatePath shortens a path from the left, keeping the file name visible
func TruncatePath(path string, maxLen int) string {
	if ansi.StringWidth(path) <= maxLen {
		return path
	}
	return ansi.TruncateLeft(path, ansi.StringWidth(path)-maxLen+1, "…")
}

// TruncateString shortens s from the right with an ellipsis
func TruncateString(s string, maxLen int) string {
	return ansi.Truncate(s, maxLen, "…")
}
