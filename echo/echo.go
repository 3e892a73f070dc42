// Package echo implements a mock floatchat.Responder that echoes the user's
// message back after a fixed delay.
package echo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/floatchat"
)

// DefaultDelay is the demo's reply delay.
const DefaultDelay = time.Second

// ErrInjected is returned by replies that fail because of FailEvery.
var ErrInjected = errors.New("echo: injected failure")

var _ floatchat.Responder = (*Responder)(nil)

// Responder replies with a templated echo of the user's text.
type Responder struct {
	// Delay before the reply is produced. Zero or negative replies
	// immediately.
	Delay time.Duration

	// FailEvery makes every Nth reply fail with ErrInjected. Zero disables
	// failures.
	FailEvery int

	calls atomic.Int64
}

// New creates a Responder with the given delay.
func New(delay time.Duration) *Responder {
	return &Responder{Delay: delay}
}

// Format returns the mock reply for text.
func Format(text string) string {
	return `You said: "` + text + `". This is a mock response.`
}

// Reply waits for the configured delay and returns Format(text). It returns
// ctx.Err() if ctx is done first.
func (r *Responder) Reply(ctx context.Context, text string) (string, error) {
	n := r.calls.Add(1)

	if r.Delay > 0 {
		timer := time.NewTimer(r.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}

	if r.FailEvery > 0 && n%int64(r.FailEvery) == 0 {
		return "", fmt.Errorf("reply %d: %w", n, ErrInjected)
	}
	return Format(text), nil
}
