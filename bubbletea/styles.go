package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/floatchat"
)

// Styles maps a Theme to lipgloss styles for widget rendering.
type Styles struct {
	Affordance lipgloss.Style
	Header     lipgloss.Style
	Panel      lipgloss.Style
	UserBubble lipgloss.Style
	BotBubble  lipgloss.Style
	Typing     lipgloss.Style
	SendHint   lipgloss.Style
	Muted      lipgloss.Style
	Leaving    lipgloss.Style
	Headline   lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t floatchat.Theme) Styles {
	return Styles{
		Affordance: lipgloss.NewStyle().Background(ansiColor(t.Primary)).Foreground(ansiColor(t.OnPrimary)).Bold(true).Padding(0, 1),
		Header:     lipgloss.NewStyle().Background(ansiColor(t.Primary)).Foreground(ansiColor(t.OnPrimary)).Bold(true).Padding(0, 1),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ansiColor(t.Primary)),
		UserBubble: lipgloss.NewStyle().Background(ansiColor(t.Primary)).Foreground(ansiColor(t.OnPrimary)).Padding(0, 1),
		BotBubble:  lipgloss.NewStyle().Background(ansiColor(t.Secondary)).Foreground(ansiColor(t.OnPrimary)).Padding(0, 1),
		Typing:     lipgloss.NewStyle().Background(ansiColor(t.Secondary)).Foreground(ansiColor(t.OnPrimary)).Italic(true).Padding(0, 1),
		SendHint:   lipgloss.NewStyle().Foreground(ansiColor(t.Primary)).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Leaving:    lipgloss.NewStyle().Faint(true),
		Headline:   lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
