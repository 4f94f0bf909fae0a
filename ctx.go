package ctx

import (
	"errors"
	"time"
)

// Ctx carries a cancellation signal, an optional deadline, and request-scoped
// values across API boundaries.
//
// Its methods are safe for simultaneous use by multiple goroutines. The
// Deadline, Done, Err, and Value methods follow the shape of the standard
// library context, so a Ctx can be handed to collaborators that expect one.
type Ctx interface {
	// Deadline returns the time when work done on behalf of this context
	// should be canceled. ok is false when no deadline is set. Successive
	// calls return the same result.
	Deadline() (deadline time.Time, ok bool)

	// Done returns a channel that is closed when this context fires. It may
	// return nil when this context can never fire.
	Done() <-chan struct{}

	// Err returns the cause recorded when the context fired: Canceled,
	// ParentCanceled, or DeadlineExceeded. It returns nil while the context
	// is still pending.
	Err() error

	// Fired reports whether the context is done, without blocking
	Fired() bool

	// Value returns the value associated with key on this context or the
	// nearest ancestor carrying it, or nil when no ancestor does
	Value(key interface{}) interface{}
}

// CancelFunc fires the context it was created with. It is idempotent and
// safe to call from multiple goroutines, including after the context was
// already canceled by an ancestor. Discarding a CancelFunc without calling
// it cancels nothing.
type CancelFunc func()

var (
	// Canceled is the cause recorded when the context's own CancelFunc
	// was called
	Canceled = errors.New("context canceled")

	// ParentCanceled is the cause recorded when an ancestor fired first
	ParentCanceled = errors.New("parent context canceled")

	// DeadlineExceeded is the cause recorded when the context's own
	// deadline passed
	DeadlineExceeded error = deadlineExceededError{}
)

type deadlineExceededError struct{}

func (deadlineExceededError) Error() string   { return "context deadline exceeded" }
func (deadlineExceededError) Timeout() bool   { return true }
func (deadlineExceededError) Temporary() bool { return true }
