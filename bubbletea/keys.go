package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the widget's key bindings.
type KeyMap struct {
	Toggle key.Binding // flips visibility from either state
	Open   key.Binding // presses the affordance while closed
	Close  key.Binding // the panel's close control
	Submit key.Binding
	Scroll key.Binding // keys forwarded to the message viewport
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "toggle chat")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open chat")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close chat")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Scroll: key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown")),
	}
}
