// Package bubbletea provides the floating chat widget and the demo page that
// hosts it as Bubble Tea models.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/floatchat"
)

// Run creates and runs the Bubble Tea program for the page. It blocks until
// the program exits. The context is used for graceful shutdown: when
// cancelled, the program quits.
func Run(ctx context.Context, p Page) error {
	prog := tea.NewProgram(p, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		prog.Quit()
	}()
	_, err := prog.Run()
	return err
}

// SubmitMsg carries text the user submitted through the widget to the page.
type SubmitMsg struct {
	Text string
}

// ReplyMsg delivers the outcome of a reply computation for a turn.
type ReplyMsg struct {
	Turn  floatchat.Turn
	Reply string
	Err   error
}

// ToggleRequestMsg asks a page that owns the widget's visibility to flip it.
type ToggleRequestMsg struct{}

// animationDoneMsg ends the animation window of the widget with the given
// ID, provided no later toggle started a newer window.
type animationDoneMsg struct {
	widget int
	gen    int
}
