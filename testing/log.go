package testing

import (
	"fmt"
	"sync"
	"testing"
)

const (
	// TC is the TRACE log constant
	TC = "TRACE"
	// WN is the WARNING log constant
	WN = "WARN"
	// ER is the ERROR log constant
	ER = "ERRR"
)

// Logger is a simple line-counting logger useful for tests. It satisfies
// the request.Logger interface.
type Logger struct {
	mu sync.RWMutex
	t  *testing.T

	lines map[string]int
}

// NewLogger creates a new logger
func NewLogger(t *testing.T) *Logger {
	return &Logger{
		t:     t,
		lines: map[string]int{},
	}
}

func (l *Logger) l(s string, args ...interface{}) {
	l.t.Log(s, fmt.Sprint(args...))
	l.inc(s)
}

func (l *Logger) inc(s string) {
	l.mu.Lock()
	l.lines[s]++
	l.mu.Unlock()
}

// Lines returns the number of log lines for the given severity
func (l *Logger) Lines(s string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lines[s]
}

func (l *Logger) Trace(args ...interface{})   { l.l(TC, args...) }
func (l *Logger) Warning(args ...interface{}) { l.l(WN, args...) }
func (l *Logger) Error(args ...interface{})   { l.l(ER, args...) }
