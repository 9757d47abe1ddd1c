package notify

import (
	"context"
	"time"
)

// Sender delivers a message to a phone number and reports whether it was accepted.
type Sender interface {
	SendMessage(ctx context.Context, toPhone, body string) bool
}

type recorder interface {
	ObserveSend(ok bool, d time.Duration)
}

// Instrumented records the result and duration of every send.
type Instrumented struct {
	next Sender
	rec  recorder
	now  func() time.Time
}

// NewInstrumented wraps next. It returns nil if next is nil.
func NewInstrumented(next Sender, rec recorder) *Instrumented {
	if next == nil {
		return nil
	}
	return &Instrumented{next: next, rec: rec, now: time.Now}
}

// SendMessage delegates to the wrapped sender.
func (g *Instrumented) SendMessage(ctx context.Context, toPhone, body string) bool {
	start := g.now()
	ok := g.next.SendMessage(ctx, toPhone, body)
	if g.rec != nil {
		g.rec.ObserveSend(ok, g.now().Sub(start))
	}
	return ok
}
