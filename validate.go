package floatchat

import "fmt"

// ValidateMessage checks that a message has an identifier and a known sender.
func ValidateMessage(msg Message) error {
	if msg.ID == "" {
		return fmt.Errorf("message has empty ID: %w", ErrValidation)
	}
	switch msg.Sender {
	case SenderUser, SenderBot:
	default:
		return fmt.Errorf("message %s has unknown sender %q: %w", msg.ID, msg.Sender, ErrValidation)
	}
	return nil
}

// ValidateMessages checks every message and that identifiers are unique
// across the sequence.
func ValidateMessages(msgs []Message) error {
	seen := make(map[string]int, len(msgs))
	for i, msg := range msgs {
		if err := ValidateMessage(msg); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		if prev, ok := seen[msg.ID]; ok {
			return fmt.Errorf("message %d reuses ID %s of message %d: %w", i, msg.ID, prev, ErrValidation)
		}
		seen[msg.ID] = i
	}
	return nil
}
