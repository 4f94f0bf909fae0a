package ctx

import (
	"sync"
	"time"

	"github.com/rkusa/ctx/clock"
	"github.com/rkusa/ctx/signal"
)

// WithCancel returns a copy of parent with a new done signal, along with
// the function that fires it. The child fires with Canceled when cancel is
// called, or with ParentCanceled when the parent fires, whichever happens
// first.
//
// Calling cancel more than once, or after the parent already canceled the
// child, is a no-op.
func WithCancel(parent Ctx) (Ctx, CancelFunc) {
	if parent == nil {
		panic("ctx: cannot derive from a nil parent")
	}
	n := &node{parent: parent, sig: signal.New()}
	n.link()
	return n, func() { n.cancel(Canceled) }
}

// node is a cancelable context. The other flavours build on it: a deadline
// node adds a timer, a value node wraps a parent without a signal of its
// own.
type node struct {
	parent Ctx
	sig    *signal.Signal

	mu     sync.Mutex // guards timer and unlink
	timer  clock.Timer
	unlink func()
}

func (n *node) Deadline() (time.Time, bool) { return n.parent.Deadline() }
func (n *node) Done() <-chan struct{}       { return n.sig.Done() }
func (n *node) Err() error                  { return n.sig.Err() }
func (n *node) Fired() bool                 { return n.sig.Fired() }

func (n *node) Value(key interface{}) interface{} {
	return n.parent.Value(key)
}

func (n *node) signal() *signal.Signal { return n.sig }

// signaler is implemented by every cancelable context of this package. It
// exposes the signal a child subscribes to in order to relay its parent's
// firing.
type signaler interface {
	signal() *signal.Signal
}

// link registers n to be fired when its parent fires. Contexts from this
// package relay through a signal subscription, so an idle child still
// observes its parent. Foreign implementations are watched from a goroutine
// that exits as soon as either side fires.
func (n *node) link() {
	p := unwrap(n.parent)
	if s, ok := p.(signaler); ok {
		remove := s.signal().Subscribe(func(error) { n.cancel(ParentCanceled) })
		n.mu.Lock()
		if !n.sig.Fired() {
			n.unlink = remove
		}
		n.mu.Unlock()
		return
	}

	done := p.Done()
	if done == nil {
		// root: never fires
		return
	}
	go func() {
		select {
		case <-done:
			n.cancel(ParentCanceled)
		case <-n.sig.Done():
		}
	}()
}

// cancel fires the node with the given cause, then releases its timer and
// its parent subscription. The first cause wins; later calls are no-ops.
func (n *node) cancel(cause error) {
	if !n.sig.Fire(cause) {
		return
	}

	n.mu.Lock()
	timer := n.timer
	unlink := n.unlink
	n.timer = nil
	n.unlink = nil
	n.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	if unlink != nil {
		unlink()
	}
}

// unwrap skips value nodes to reach the nearest ancestor-or-self that can
// fire on its own
func unwrap(c Ctx) Ctx {
	for {
		v, ok := c.(*valueNode)
		if !ok {
			return c
		}
		c = v.parent
	}
}
