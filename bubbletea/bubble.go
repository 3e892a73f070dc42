package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/floatchat"
	"github.com/fwojciec/floatchat/goldmark"
	"github.com/rivo/uniseg"
)

// bubbleShare is the fraction of the list width a bubble may occupy.
const (
	bubbleShareNum = 4
	bubbleShareDen = 5
)

// RenderBubble renders a message as a chat bubble placed inside a row of the
// given width. User messages are right-aligned in the theme color; bot
// messages are left-aligned and neutral. With markdown set, bot content is
// rendered as markdown; otherwise it is shown verbatim.
func RenderBubble(msg floatchat.Message, width int, theme floatchat.Theme, styles Styles, markdown bool) string {
	style := styles.BotBubble
	align := lipgloss.Left
	if msg.IsUser() {
		style = styles.UserBubble
		align = lipgloss.Right
	}

	textWidth := bubbleTextWidth(msg.Content, width, style)
	var body string
	if markdown && !msg.IsUser() {
		body = goldmark.Render(msg.Content, textWidth, theme)
	} else {
		body = lipgloss.NewStyle().Width(textWidth).Render(msg.Content)
	}
	return lipgloss.PlaceHorizontal(width, align, style.Render(body))
}

// RenderTypingBubble renders the typing indicator bubble with the spinner
// frame in front of the label.
func RenderTypingBubble(frame string, width int, styles Styles) string {
	bubble := styles.Typing.Render(strings.TrimSpace(frame + " Typing..."))
	return lipgloss.PlaceHorizontal(width, lipgloss.Left, bubble)
}

// bubbleTextWidth sizes the text column to the widest content line, capped
// so the bubble including its padding stays within its share of the row.
func bubbleTextWidth(content string, width int, style lipgloss.Style) int {
	limit := width*bubbleShareNum/bubbleShareDen - style.GetHorizontalFrameSize()
	widest := 0
	for _, line := range strings.Split(content, "\n") {
		widest = max(widest, uniseg.StringWidth(line))
	}
	return max(min(widest, limit), 1)
}
