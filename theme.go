package floatchat

// Theme defines semantic color mappings using ANSI color indices (0-255).
// The user's terminal theme determines the actual RGB values, so the widget
// automatically matches any color scheme. A negative index means no color.
type Theme struct {
	Primary   int // Toggle affordance, header, user bubbles, send hint
	OnPrimary int // Text drawn on Primary
	Secondary int // Bot bubbles and the typing bubble
	Muted     int // Placeholders, hints, leaving presentation
	Error     int // Error text
	Accent    int // Headings, links
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Primary:   4,
		OnPrimary: 15,
		Secondary: 8,
		Muted:     8,
		Error:     1,
		Accent:    5,
	}
}

// WithPrimary returns a copy of t with Primary replaced. Negative indices
// keep the current value.
func (t Theme) WithPrimary(index int) Theme {
	if index >= 0 {
		t.Primary = index
	}
	return t
}
