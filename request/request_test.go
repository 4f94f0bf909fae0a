package request_test

import (
	"strings"
	"testing"
	"time"

	"github.com/rkusa/ctx"
	"github.com/rkusa/ctx/request"
	lt "github.com/rkusa/ctx/testing"
)

// the line-counting test logger must be usable on a request context
var _ request.Logger = (*lt.Logger)(nil)

// TestUniqueness tests whether request IDs are unique
func TestUniqueness(t *testing.T) {
	c := request.New(ctx.Background())
	other := request.New(ctx.Background())

	if c.UUID() == other.UUID() {
		t.Error("expect request contexts to have different UUIDs")
	}
}

// TestShortID tests whether ShortID is a substring of the ID
func TestShortID(t *testing.T) {
	c := request.New(ctx.Background())

	if !strings.HasPrefix(c.UUID(), c.ShortID()) {
		t.Error("expect ShortID to be a substring of UUID", c.UUID(), c.ShortID())
	}
}

// TestKV tests the request key/value bag
func TestKV(t *testing.T) {
	c := request.New(ctx.Background())

	c.Store("lang", "en")
	if res := c.Load("lang"); res != "en" {
		t.Errorf("expect to load <en>, but got <%v>", res)
	}

	c.Delete("lang")
	if res := c.Load("lang"); res != nil {
		t.Errorf("expect a deleted key to return nil, but got <%v>", res)
	}
}

// TestValueLookup tests whether values attached below the request context
// stay visible through it
func TestValueLookup(t *testing.T) {
	type key struct{}
	parent := ctx.WithValue(ctx.Background(), key{}, "v")
	c := request.New(parent)

	if res := c.Value(key{}); res != "v" {
		t.Errorf("expect ancestor value <v>, but got <%v>", res)
	}
}

// TestCancellation ensures that the context is released upon cancellation
func TestCancellation(t *testing.T) {
	tt := lt.New(t)
	c := request.New(ctx.Background())

	c.Cancel()

	tt.WaitFired(c, time.Second)
	tt.ExpectCause(c, ctx.Canceled)
}

// TestCancellationPropagation ensures that cancelling the root request
// releases every context branched off it
func TestCancellationPropagation(t *testing.T) {
	tt := lt.New(t)
	root := request.New(ctx.Background())
	branch := root.BranchOff()
	grandchild := branch.BranchOff()

	root.Cancel()

	for _, c := range []request.Ctx{branch, grandchild} {
		tt.WaitFired(c, time.Second)
		tt.ExpectCause(c, ctx.ParentCanceled)
	}
	tt.ExpectCause(root, ctx.Canceled)
}

// TestBranchOff tests whether a branch shares the request identity and bag
func TestBranchOff(t *testing.T) {
	root := request.New(ctx.Background())
	branch := root.BranchOff()

	if branch.UUID() != root.UUID() {
		t.Error("expect a branch to keep the request ID")
	}

	root.Store("k", "v")
	if res := branch.Load("k"); res != "v" {
		t.Errorf("expect the bag to be shared, but got <%v>", res)
	}
}

// TestBranchCancellation tests whether cancelling a branch leaves the root
// request pending
func TestBranchCancellation(t *testing.T) {
	tt := lt.New(t)
	root := request.New(ctx.Background())
	branch := root.BranchOff()

	branch.Cancel()

	tt.ExpectCause(branch, ctx.Canceled)
	tt.ExpectPending(root)
}

// TestTimeout ensures that the context is released after the given timeout
func TestTimeout(t *testing.T) {
	tt := lt.New(t)
	c := request.New(tt.Root(), request.WithTimeout(time.Second))

	tt.ExpectPending(c)
	tt.Clock().Add(time.Second)

	tt.ExpectCause(c, ctx.DeadlineExceeded)
}

// TestLogger tests whether log lines reach the attached logger
func TestLogger(t *testing.T) {
	tt := lt.New(t)
	c := request.New(ctx.Background(), request.WithLogger(tt.Logger()))

	c.Trace("r.test.trace", "A trace line")
	c.Trace("r.test.trace", "A second trace line")
	c.Tracef("r.test.trace", "A %s trace line", "third")
	c.Warning("A warning line")
	c.Warningf("Another %s line", "warning")
	c.Error("An error line")

	tests := []struct {
		severity string
		expect   int
	}{
		{severity: lt.TC, expect: 3},
		{severity: lt.WN, expect: 2},
		{severity: lt.ER, expect: 1},
	}

	for _, test := range tests {
		res := tt.Logger().Lines(test.severity)
		if res != test.expect {
			tt.Errorf(
				"expect logger to receive %d log lines for severity <%s>, but got %d",
				test.expect,
				test.severity,
				res,
			)
		}
	}
}
