package ctx

import (
	"reflect"
	"time"
)

// WithValue returns a copy of parent carrying the given key/value pair. A
// node holds exactly one pair; chain WithValue calls to carry more. The
// child has no cancellation of its own: its done state mirrors the
// parent's, and no cancel function is produced.
//
// Values should only hold request-scoped data that crosses API and process
// boundaries, not optional function parameters. Keys must be comparable,
// and should be of an unexported type to avoid collisions between
// packages.
func WithValue(parent Ctx, key, val interface{}) Ctx {
	if parent == nil {
		panic("ctx: cannot derive from a nil parent")
	}
	if key == nil {
		panic("ctx: nil value key")
	}
	if !reflect.TypeOf(key).Comparable() {
		panic("ctx: value key is not comparable")
	}
	return &valueNode{parent: parent, key: key, val: val}
}

// valueNode carries a single key/value pair and relays everything else to
// its parent
type valueNode struct {
	parent   Ctx
	key, val interface{}
}

func (n *valueNode) Deadline() (time.Time, bool) { return n.parent.Deadline() }
func (n *valueNode) Done() <-chan struct{}       { return n.parent.Done() }
func (n *valueNode) Err() error                  { return n.parent.Err() }
func (n *valueNode) Fired() bool                 { return n.parent.Fired() }

func (n *valueNode) Value(key interface{}) interface{} {
	if n.key == key {
		return n.val
	}
	return n.parent.Value(key)
}
