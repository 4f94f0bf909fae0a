// Package signal provides the single-fire notification primitive behind
// context cancellation. A signal fires at most once, records the first
// cause, and wakes every observer, including observers registering after
// the fact.
package signal

import "sync"

// Signal is a single-fire, multi-observer notification. The zero value is
// not usable, call New.
type Signal struct {
	mu   sync.Mutex
	err  error
	done chan struct{}
	subs map[*subscription]struct{}
}

type subscription struct {
	fn func(cause error)
}

// New returns a pending signal
func New() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Fire transitions the signal from pending to fired and records cause.
// Only the first call wins; Fire reports whether this call was the one
// that fired. Subscribed callbacks run after the lock is released, so a
// callback may safely call back into the signal.
func (s *Signal) Fire(cause error) bool {
	if cause == nil {
		panic("signal: fire with a nil cause")
	}

	s.mu.Lock()
	if s.err != nil {
		s.mu.Unlock()
		return false
	}
	s.err = cause
	close(s.done)
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for sub := range subs {
		sub.fn(cause)
	}
	return true
}

// Fired reports whether the signal has fired, without blocking
func (s *Signal) Fired() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Err returns the recorded cause, or nil while the signal is pending
func (s *Signal) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Done returns the channel closed upon firing. Waiters selecting on it
// after the signal fired resolve immediately.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Subscribe registers fn to run once when the signal fires. On an already
// fired signal, fn runs synchronously before Subscribe returns. The
// returned remove function drops the registration; it is idempotent and a
// no-op once the signal fired.
func (s *Signal) Subscribe(fn func(cause error)) (remove func()) {
	s.mu.Lock()
	if s.err != nil {
		cause := s.err
		s.mu.Unlock()
		fn(cause)
		return func() {}
	}
	sub := &subscription{fn: fn}
	if s.subs == nil {
		s.subs = map[*subscription]struct{}{}
	}
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, sub)
		s.mu.Unlock()
	}
}
