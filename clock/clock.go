// Package clock abstracts the time source behind context deadlines, so
// that deadline behaviour can be driven deterministically in tests.
package clock

import "time"

// Clock supplies the current time and schedules one-shot wakeups
type Clock interface {
	// Now returns the current time
	Now() time.Time

	// AfterFunc schedules fn to run once d has elapsed and returns a
	// handle to release the wakeup early
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a single scheduled wakeup
type Timer interface {
	// Stop releases the wakeup and reports whether it was still pending.
	// Stop does not wait for a callback already running to complete.
	Stop() bool
}

// Realtime returns the Clock backed by the runtime timers
func Realtime() Clock {
	return realtime{}
}

type realtime struct{}

func (realtime) Now() time.Time {
	return time.Now()
}

func (realtime) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
