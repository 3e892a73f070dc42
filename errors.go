package floatchat

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a message, conversation or widget
	// configuration failed validation.
	ErrValidation = errors.New("validation error")

	// ErrPartialControl indicates only one half of the controlled-visibility
	// pair (current value, toggle callback) was supplied.
	ErrPartialControl = errors.New("partial visibility control: both open value and toggle callback are required")

	// ErrUnknownTurn indicates Resolve was called for a turn that is not
	// pending.
	ErrUnknownTurn = errors.New("unknown turn")
)
