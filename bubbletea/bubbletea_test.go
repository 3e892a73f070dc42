package bubbletea_test

import (
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/floatchat"
	bt "github.com/fwojciec/floatchat/bubbletea"
	"github.com/stretchr/testify/require"
)

// submitRecorder records every text passed to OnSubmit.
type submitRecorder struct {
	texts []string
}

func (r *submitRecorder) onSubmit(text string) tea.Cmd {
	r.texts = append(r.texts, text)
	return nil
}

// initWidget creates a widget and sends a WindowSizeMsg to lay it out.
func initWidget(t *testing.T, cfg bt.WidgetConfig) bt.Widget {
	t.Helper()
	return initWidgetWithSize(t, cfg, 100, 30)
}

// initWidgetWithSize creates a widget laid out for a custom terminal size.
func initWidgetWithSize(t *testing.T, cfg bt.WidgetConfig, width, height int) bt.Widget {
	t.Helper()
	if cfg.OnSubmit == nil {
		cfg.OnSubmit = func(string) tea.Cmd { return nil }
	}
	w, err := bt.NewWidget(cfg)
	require.NoError(t, err)
	w, _ = w.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return w
}

// openWidget toggles a self-owned widget open and lets the animation expire.
func openWidget(t *testing.T, w bt.Widget) bt.Widget {
	t.Helper()
	w, _ = w.Toggle()
	w, _ = w.Update(bt.ExpireAnimation(w))
	require.True(t, w.IsOpen())
	require.False(t, w.Animating())
	return w
}

// typeString sends one key message per rune.
func typeString(t *testing.T, w bt.Widget, s string) bt.Widget {
	t.Helper()
	for _, r := range s {
		w, _ = w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return w
}

// updatePage sends a message and returns the updated Page.
func updatePage(t *testing.T, p bt.Page, msg tea.Msg) (bt.Page, tea.Cmd) {
	t.Helper()
	updated, cmd := p.Update(msg)
	page, ok := updated.(bt.Page)
	require.True(t, ok)
	return page, cmd
}

// findMsg executes cmd, expanding batches, and returns the first message of
// type T. Only use it on commands that do not sleep.
func findMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	var zero T
	if cmd == nil {
		t.Fatalf("nil command, want %T", zero)
	}
	switch msg := cmd().(type) {
	case T:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if m, ok := c().(T); ok {
				return m
			}
		}
	}
	t.Fatalf("no %T produced by command", zero)
	return zero
}

// conversation builds n alternating messages with IDs "m1".."mn".
func conversation(n int) []floatchat.Message {
	msgs := make([]floatchat.Message, 0, n)
	for i := 1; i <= n; i++ {
		id := "m" + strconv.Itoa(i)
		if i%2 == 0 {
			msgs = append(msgs, floatchat.NewUserMessage(id, "user line "+strconv.Itoa(i)))
		} else {
			msgs = append(msgs, floatchat.NewBotMessage(id, "bot line "+strconv.Itoa(i)))
		}
	}
	return msgs
}
