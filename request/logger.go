package request

// Logger receives the log lines emitted on a request context
type Logger interface {
	Trace(args ...interface{})
	Warning(args ...interface{})
	Error(args ...interface{})
}

// NopLogger returns a Logger that discards everything. It is the default
// when no logger is attached to a request context.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Trace(args ...interface{})   {}
func (nopLogger) Warning(args ...interface{}) {}
func (nopLogger) Error(args ...interface{})   {}
