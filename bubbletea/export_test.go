package bubbletea

import tea "github.com/charmbracelet/bubbletea"

// ExpireAnimation returns the message that ends w's current animation window.
func ExpireAnimation(w Widget) tea.Msg {
	return animationDoneMsg{widget: w.id, gen: w.animGen}
}

// ExpireStaleAnimation returns the expiry scheduled by the toggle before the
// most recent one.
func ExpireStaleAnimation(w Widget) tea.Msg {
	return animationDoneMsg{widget: w.id, gen: w.animGen - 1}
}

// ExpireForeignAnimation returns an expiry addressed to a different widget.
func ExpireForeignAnimation(w Widget) tea.Msg {
	return animationDoneMsg{widget: -w.id, gen: w.animGen}
}

// RenderContent exports renderContent for testing.
func RenderContent(w Widget) string {
	return w.renderContent()
}
