package ctx_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/rkusa/ctx"
)

type keyA struct{}
type keyB struct{}

// TestRoots tests whether the root contexts are never done
func TestRoots(t *testing.T) {
	for _, c := range []ctx.Ctx{ctx.Background(), ctx.Empty()} {
		if c.Fired() {
			t.Errorf("expect root context %v to be pending", c)
		}
		if err := c.Err(); err != nil {
			t.Errorf("expect root context %v to have no cause, but got <%v>", c, err)
		}
		if c.Done() != nil {
			t.Errorf("expect root context %v to have no done channel", c)
		}
		if _, ok := c.Deadline(); ok {
			t.Errorf("expect root context %v to have no deadline", c)
		}
		if v := c.Value(keyA{}); v != nil {
			t.Errorf("expect root context %v to carry no value, but got <%v>", c, v)
		}
	}
}

// TestRootNames tests the string representation of the root contexts
func TestRootNames(t *testing.T) {
	if res := fmt.Sprint(ctx.Background()); res != "ctx.Background" {
		t.Errorf("expect root to print as ctx.Background, but got %s", res)
	}
	if res := fmt.Sprint(ctx.Empty()); res != "ctx.Empty" {
		t.Errorf("expect root to print as ctx.Empty, but got %s", res)
	}
}

// TestValue tests whether values are visible to the node and its
// descendants, never to ancestors
func TestValue(t *testing.T) {
	p := ctx.WithValue(ctx.Background(), keyA{}, "a")
	c := ctx.WithValue(p, keyB{}, "b")

	if res := c.Value(keyB{}); res != "b" {
		t.Errorf("expect own value <b>, but got <%v>", res)
	}
	if res := c.Value(keyA{}); res != "a" {
		t.Errorf("expect inherited value <a>, but got <%v>", res)
	}
	if res := p.Value(keyB{}); res != nil {
		t.Errorf("expect value to be invisible to the ancestor, but got <%v>", res)
	}
	if res := c.Value("unknown"); res != nil {
		t.Errorf("expect a miss to return nil, but got <%v>", res)
	}
}

// TestValueShadowing tests whether the nearest pair wins
func TestValueShadowing(t *testing.T) {
	p := ctx.WithValue(ctx.Background(), keyA{}, "outer")
	c := ctx.WithValue(p, keyA{}, "inner")

	if res := c.Value(keyA{}); res != "inner" {
		t.Errorf("expect the nearest value to win, but got <%v>", res)
	}
	if res := p.Value(keyA{}); res != "outer" {
		t.Errorf("expect the ancestor to keep its value, but got <%v>", res)
	}
}

// TestValueSibling tests whether values leak across branches
func TestValueSibling(t *testing.T) {
	root := ctx.Background()
	a := ctx.WithValue(root, keyA{}, "a")
	b := ctx.WithValue(root, keyB{}, "b")

	if res := a.Value(keyB{}); res != nil {
		t.Errorf("expect sibling value to be invisible, but got <%v>", res)
	}
	if res := b.Value(keyA{}); res != nil {
		t.Errorf("expect sibling value to be invisible, but got <%v>", res)
	}
}

// TestValueMirrorsCancellation tests whether a value node reflects its
// parent's done state
func TestValueMirrorsCancellation(t *testing.T) {
	p, cancel := ctx.WithCancel(ctx.Background())
	c := ctx.WithValue(p, keyA{}, "a")

	if c.Fired() {
		t.Error("expect value context to start pending")
	}

	cancel()

	if !c.Fired() {
		t.Error("expect value context to mirror its parent firing")
	}
	if c.Err() != p.Err() {
		t.Errorf("expect value context to report its parent cause, but got <%v>", c.Err())
	}
}

// TestNilParent tests whether deriving from a nil parent is rejected
func TestNilParent(t *testing.T) {
	tests := []struct {
		name   string
		derive func()
	}{
		{name: "cancel", derive: func() { ctx.WithCancel(nil) }},
		{name: "deadline", derive: func() { ctx.WithDeadline(nil, time.Now()) }},
		{name: "timeout", derive: func() { ctx.WithTimeout(nil, time.Second) }},
		{name: "value", derive: func() { ctx.WithValue(nil, keyA{}, "v") }},
	}

	for _, test := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expect a nil parent to panic (%s)", test.name)
				}
			}()
			test.derive()
		}()
	}
}

// TestValueNilKey tests whether a nil key is rejected
func TestValueNilKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expect a nil key to panic")
		}
	}()
	ctx.WithValue(ctx.Background(), nil, "v")
}
