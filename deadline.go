package ctx

import (
	"time"

	"github.com/rkusa/ctx/clock"
	"github.com/rkusa/ctx/signal"
)

// walltime is the time source used when no clock travels on the chain
var walltime = clock.Realtime()

type clockKey struct{}

// WithClock returns a copy of parent that makes every deadline derived
// below it use clk as its time source. It is primarily meant for tests
// driving a mock clock.
func WithClock(parent Ctx, clk clock.Clock) Ctx {
	return WithValue(parent, clockKey{}, clk)
}

func clockFrom(c Ctx) clock.Clock {
	if clk, ok := c.Value(clockKey{}).(clock.Clock); ok {
		return clk
	}
	return walltime
}

// WithDeadline returns a copy of parent carrying the given deadline, along
// with the function that fires it early. The child fires with
// DeadlineExceeded when the deadline passes, with Canceled when cancel is
// called, or with ParentCanceled when the parent fires, whichever happens
// first. Firing releases the scheduled wakeup.
//
// A deadline already in the past makes the child observably done before
// WithDeadline returns.
func WithDeadline(parent Ctx, deadline time.Time) (Ctx, CancelFunc) {
	if parent == nil {
		panic("ctx: cannot derive from a nil parent")
	}
	clk := clockFrom(parent)
	n := &timerNode{
		node:     node{parent: parent, sig: signal.New()},
		deadline: deadline,
	}
	n.link()

	d := deadline.Sub(clk.Now())
	if d <= 0 {
		n.cancel(DeadlineExceeded)
		return n, func() { n.cancel(Canceled) }
	}

	n.mu.Lock()
	if !n.sig.Fired() {
		n.timer = clk.AfterFunc(d, func() { n.cancel(DeadlineExceeded) })
	}
	n.mu.Unlock()
	return n, func() { n.cancel(Canceled) }
}

// WithTimeout returns WithDeadline(parent, now+timeout) on the parent's
// clock
func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, CancelFunc) {
	if parent == nil {
		panic("ctx: cannot derive from a nil parent")
	}
	return WithDeadline(parent, clockFrom(parent).Now().Add(timeout))
}

// timerNode is a cancelable context with a deadline of its own. Deadline
// reports the node's own instant even when an ancestor carries an earlier
// one; the earliest event along the chain still wins through signal
// propagation.
type timerNode struct {
	node
	deadline time.Time
}

func (n *timerNode) Deadline() (time.Time, bool) {
	return n.deadline, true
}
