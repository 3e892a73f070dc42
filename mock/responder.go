// Package mock provides test doubles for floatchat interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/floatchat"
)

// Interface compliance check.
var _ floatchat.Responder = (*Responder)(nil)

// Responder is a test double for floatchat.Responder.
// Set ReplyFn before calling Reply.
type Responder struct {
	ReplyFn func(ctx context.Context, text string) (string, error)
}

// Reply delegates to ReplyFn.
func (r *Responder) Reply(ctx context.Context, text string) (string, error) {
	return r.ReplyFn(ctx, text)
}
