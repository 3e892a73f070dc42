package floatchat

// Default cosmetic options.
const (
	DefaultTitle       = "Chat"
	DefaultPlaceholder = "Type your message..."
	DefaultIcon        = "💬"
	DefaultSendLabel   = "Send message"
	DefaultCloseLabel  = "Close chat"
	DefaultOpenLabel   = "Open chat"
)

// Options holds the cosmetic settings of the chat widget. Zero fields take
// the defaults above; see WithDefaults.
type Options struct {
	Title       string
	Placeholder string
	Icon        string
	SendLabel   string
	CloseLabel  string
	OpenLabel   string

	// ThemeColor overrides Theme.Primary when non-nil.
	ThemeColor *int

	// Markdown renders bot messages as markdown. When false every message
	// is shown exactly as stored.
	Markdown bool
}

// WithDefaults returns a copy of o with every empty field set to its default.
func (o Options) WithDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	if o.Icon == "" {
		o.Icon = DefaultIcon
	}
	if o.SendLabel == "" {
		o.SendLabel = DefaultSendLabel
	}
	if o.CloseLabel == "" {
		o.CloseLabel = DefaultCloseLabel
	}
	if o.OpenLabel == "" {
		o.OpenLabel = DefaultOpenLabel
	}
	return o
}

// ApplyTheme returns t with the option's theme color applied.
func (o Options) ApplyTheme(t Theme) Theme {
	if o.ThemeColor == nil {
		return t
	}
	return t.WithPrimary(*o.ThemeColor)
}
