// Package goldmark renders chat message content to ANSI-styled terminal
// output using goldmark for parsing and lipgloss for styling.
package goldmark

import (
	"strings"

	"github.com/fwojciec/floatchat"
)

// Render parses markdown source and returns styled text wrapped to width.
// Plain text without markdown syntax renders as itself, wrapped.
func Render(source string, width int, theme floatchat.Theme) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	if width <= 0 {
		width = 40
	}
	return newRenderer(theme, width).render([]byte(source))
}
