package floatchat

import "context"

// ApologyText replaces the reply when computing it fails.
const ApologyText = "Sorry, I couldn't process your request."

// GreetingText is the bot message a new demo conversation starts with.
const GreetingText = "Hello! How can I assist you today?"

// Responder computes a bot reply to a user message. Reply may block; callers
// run it off the UI event loop and cancel through ctx.
type Responder interface {
	Reply(ctx context.Context, text string) (string, error)
}
