package floatchat

import "fmt"

// Turn identifies a user message awaiting its bot reply.
type Turn struct {
	ID   int
	Text string
}

// Conversation is the host-side store of an ordered message list and the
// typing indicator. It is not safe for concurrent use: all mutations happen
// on the UI event loop, and only the reply computation runs elsewhere.
//
// The typing indicator is derived from pending turns. It is true from the
// moment Submit appends a user message until every submitted turn has been
// resolved, whether the reply succeeded or failed.
type Conversation struct {
	newID    func() string
	messages []Message
	pending  map[int]struct{}
	nextTurn int
}

// NewConversation creates a Conversation seeded with the given messages.
// newID must return a fresh, unique identifier on every call.
func NewConversation(newID func() string, seed ...Message) *Conversation {
	msgs := make([]Message, len(seed))
	copy(msgs, seed)
	return &Conversation{
		newID:    newID,
		messages: msgs,
		pending:  make(map[int]struct{}),
	}
}

// Submit appends a user message with text and marks a reply as pending.
// The returned Turn must be passed to Resolve once the reply is computed.
func (c *Conversation) Submit(text string) (Turn, Message) {
	msg := NewUserMessage(c.newID(), text)
	c.messages = append(c.messages, msg)

	c.nextTurn++
	turn := Turn{ID: c.nextTurn, Text: text}
	c.pending[turn.ID] = struct{}{}
	return turn, msg
}

// Resolve appends the bot reply for turn. A non-nil err replaces the reply
// with ApologyText. Resolving a turn that is not pending returns
// ErrUnknownTurn and leaves the conversation unchanged.
func (c *Conversation) Resolve(turn Turn, reply string, err error) (Message, error) {
	if _, ok := c.pending[turn.ID]; !ok {
		return Message{}, fmt.Errorf("resolve turn %d: %w", turn.ID, ErrUnknownTurn)
	}
	delete(c.pending, turn.ID)

	content := reply
	if err != nil {
		content = ApologyText
	}
	msg := NewBotMessage(c.newID(), content)
	c.messages = append(c.messages, msg)
	return msg, nil
}

// Messages returns a copy of the message sequence in display order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages.
func (c *Conversation) Len() int { return len(c.messages) }

// Typing reports whether any submitted turn is still awaiting its reply.
func (c *Conversation) Typing() bool { return len(c.pending) > 0 }
