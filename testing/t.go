// Package testing provides helpers to test code built around contexts: a
// wrapper of the go standard testing.T, a line-counting logger, and a
// manually driven clock.
package testing

import (
	"testing"
	"time"

	"github.com/rkusa/ctx"
	"github.com/rkusa/ctx/clock"
)

// T is a wrapper of go standard testing.T
// It adds a few additional functions useful to context tests
type T struct {
	t      *testing.T
	logger *Logger
	clock  *clock.Mock
}

// New returns a new instance of T
func New(t *testing.T) *T {
	return &T{
		t:      t,
		logger: NewLogger(t),
		clock:  clock.NewMock(),
	}
}

// Logger returns the line-counting test logger
func (t *T) Logger() *Logger {
	return t.logger
}

// Clock returns the mock clock driving every deadline derived from Root()
func (t *T) Clock() *clock.Mock {
	return t.clock
}

// Root returns a root context bound to the mock clock
func (t *T) Root() ctx.Ctx {
	return ctx.WithClock(ctx.Background(), t.clock)
}

// WaitFired fails the test when c does not fire within d
func (t *T) WaitFired(c ctx.Ctx, d time.Duration) {
	select {
	case <-c.Done():
	case <-time.After(d):
		t.t.Error("expect context to fire")
	}
}

// ExpectCause fails the test when the cause recorded on c differs from want
func (t *T) ExpectCause(c ctx.Ctx, want error) {
	if got := c.Err(); got != want {
		t.t.Errorf("expect cause to be <%v>, but got <%v>", want, got)
	}
}

// ExpectPending fails the test when c already fired
func (t *T) ExpectPending(c ctx.Ctx) {
	if c.Fired() {
		t.t.Errorf("expect context to be pending, but it fired with <%v>", c.Err())
	}
}

// Standard go testing.T functions

func (t *T) Error(args ...interface{}) {
	t.t.Error(args...)
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.t.Errorf(format, args...)
}

func (t *T) Fatal(args ...interface{}) {
	t.t.Fatal(args...)
}

func (t *T) Fatalf(format string, args ...interface{}) {
	t.t.Fatalf(format, args...)
}

func (t *T) Log(args ...interface{}) {
	t.t.Log(args...)
}

func (t *T) Logf(format string, args ...interface{}) {
	t.t.Logf(format, args...)
}

func (t *T) Parallel() {
	t.t.Parallel()
}

func (t *T) Skip(args ...interface{}) {
	t.t.Skip(args...)
}
