package floatchat

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single entry in a conversation. Messages are immutable once
// created; the Conversation that appended them owns the sequence.
type Message struct {
	ID      string
	Content string
	Sender  Sender
}

// IsUser reports whether the message was sent by the user.
func (m Message) IsUser() bool { return m.Sender == SenderUser }

// NewUserMessage creates a user-authored message.
func NewUserMessage(id, content string) Message {
	return Message{ID: id, Content: content, Sender: SenderUser}
}

// NewBotMessage creates a bot-authored message.
func NewBotMessage(id, content string) Message {
	return Message{ID: id, Content: content, Sender: SenderBot}
}

// SameMessages reports whether a and b hold the same message IDs in the
// same order. Content is not compared because messages are immutable.
func SameMessages(a, b []Message) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
