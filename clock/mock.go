package clock

import (
	"sync"
	"time"
)

// Mock is a manually driven Clock for tests. Time only moves when Add or
// Set is called; timers due on the way fire during that call, in deadline
// order, with no lock held.
type Mock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*mockTimer
}

// NewMock returns a mock clock set to the unix epoch
func NewMock() *Mock {
	return &Mock{now: time.Unix(0, 0).UTC()}
}

// Now returns the current mock time
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules fn to run once the mock time reaches now+d. Unlike
// the realtime clock, a non-positive d does not fire fn until the next Add
// or Set call.
func (m *Mock) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	t := &mockTimer{clock: m, when: m.now.Add(d), fn: fn}
	m.timers = append(m.timers, t)
	m.mu.Unlock()
	return t
}

// Add advances the mock time by d, firing every timer due on the way
func (m *Mock) Add(d time.Duration) {
	m.mu.Lock()
	t := m.now.Add(d)
	m.mu.Unlock()
	m.Set(t)
}

// Set advances the mock time to t, firing every timer due on the way.
// Moving the clock backwards only updates the time.
func (m *Mock) Set(t time.Time) {
	for {
		m.mu.Lock()
		next := -1
		for i, timer := range m.timers {
			if timer.when.After(t) {
				continue
			}
			if next == -1 || timer.when.Before(m.timers[next].when) {
				next = i
			}
		}
		if next == -1 {
			m.now = t
			m.mu.Unlock()
			return
		}
		timer := m.timers[next]
		m.timers = append(m.timers[:next], m.timers[next+1:]...)
		if timer.when.After(m.now) {
			m.now = timer.when
		}
		m.mu.Unlock()

		timer.fn()
	}
}

// Pending returns the number of wakeups still scheduled. Useful to assert
// that canceling a deadline released its timer.
func (m *Mock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

type mockTimer struct {
	clock *Mock
	when  time.Time
	fn    func()
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	for i, pending := range t.clock.timers {
		if pending == t {
			t.clock.timers = append(t.clock.timers[:i], t.clock.timers[i+1:]...)
			return true
		}
	}
	return false
}
