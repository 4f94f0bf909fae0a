package ctx

import "time"

// emptyCtx is never canceled, carries no value, and has no deadline
type emptyCtx int

func (*emptyCtx) Deadline() (time.Time, bool)   { return time.Time{}, false }
func (*emptyCtx) Done() <-chan struct{}         { return nil }
func (*emptyCtx) Err() error                    { return nil }
func (*emptyCtx) Fired() bool                   { return false }
func (*emptyCtx) Value(interface{}) interface{} { return nil }

func (e *emptyCtx) String() string {
	switch e {
	case background:
		return "ctx.Background"
	case empty:
		return "ctx.Empty"
	}
	return "unknown empty ctx"
}

var (
	background = new(emptyCtx)
	empty      = new(emptyCtx)
)

// Background returns the conventional top-level root context. It has no
// parent, no deadline, no value, and never fires.
func Background() Ctx {
	return background
}

// Empty returns a root context for places that must never carry real
// cancellation or values, such as test fixtures.
func Empty() Ctx {
	return empty
}
