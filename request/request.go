// Package request defines a context type carrying information about a
// specific inbound request: a unique identifier, a key/value bag, and
// scoped logging. It is created when a request hits the first service and
// it is propagated across all services downstream, either by deriving it
// with BranchOff or by sending it over the wire with MarshalGob or
// MarshalText.
//
// It builds on the ctx package, so a request context follows its parent's
// cancellation and can carry a deadline of its own.
package request

import (
	"fmt"
	"strings"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/rkusa/ctx"
)

// Ctx is the request context interface
type Ctx interface {
	ctx.Ctx

	// UUID returns the identifier assigned to the request
	UUID() string
	// ShortID returns a partial representation of the request ID for the
	// sake of readability. Its uniqueness is not guaranteed.
	ShortID() string
	// Cancel fires the request context. It is idempotent.
	Cancel()
	// BranchOff derives a request context that shares the request ID and
	// the key/value bag, follows this context's cancellation, and numbers
	// its log lines on a lane of its own
	BranchOff() Ctx

	// Store adds the given key/value pair to the request bag
	Store(key, val interface{})
	// Load returns the value stored under key, or nil
	Load(key interface{}) interface{}
	// Delete removes the value stored under key
	Delete(key interface{})

	Trace(tag string, args ...interface{})
	Tracef(tag string, format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// context holds the context of a request during its whole lifecycle
type context struct {
	ctx.Ctx

	cancel  ctx.CancelFunc
	logger  Logger
	id      string
	stepper *Stepper
	kv      *KV
}

type options struct {
	timeout time.Duration
	logger  Logger
}

// Option configures a request context at creation time
type Option func(*options)

// WithTimeout fires the request context automatically once d has elapsed
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger routes the request log lines to l
func WithLogger(l Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a request context derived from parent and returns it
func New(parent ctx.Ctx, opts ...Option) Ctx {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var core ctx.Ctx
	var cancel ctx.CancelFunc
	if o.timeout > 0 {
		core, cancel = ctx.WithTimeout(parent, o.timeout)
	} else {
		core, cancel = ctx.WithCancel(parent)
	}

	logger := o.logger
	if logger == nil {
		logger = NopLogger()
	}

	return &context{
		Ctx:     core,
		cancel:  cancel,
		logger:  logger,
		id:      uuid.NewV4().String(),
		stepper: NewStepper(),
		kv:      newKV(),
	}
}

// UUID returns the universally unique identifier assigned to this request
func (c *context) UUID() string {
	return c.id
}

func (c *context) ShortID() string {
	return strings.Split(c.id, "-")[0]
}

func (c *context) Cancel() {
	c.cancel()
}

func (c *context) BranchOff() Ctx {
	core, cancel := ctx.WithCancel(c.Ctx)
	return &context{
		Ctx:     core,
		cancel:  cancel,
		logger:  c.logger,
		id:      c.id,
		stepper: c.stepper.BranchOff(),
		kv:      c.kv,
	}
}

func (c *context) Store(key, val interface{}) {
	c.kv.store(key, val)
}

func (c *context) Load(key interface{}) interface{} {
	return c.kv.load(key)
}

func (c *context) Delete(key interface{}) {
	c.kv.delete(key)
}

func (c *context) Trace(tag string, args ...interface{}) {
	c.logger.Trace(buildLogLine(c.logPrefix(), tag, spaceOut(args...)))
}

func (c *context) Tracef(tag string, format string, args ...interface{}) {
	c.logger.Trace(buildLogLine(c.logPrefix(), tag, fmt.Sprintf(format, args...)))
}

func (c *context) Warning(args ...interface{}) {
	c.logger.Warning(buildLogLine(c.logPrefix(), spaceOut(args...)))
}

func (c *context) Warningf(format string, args ...interface{}) {
	c.logger.Warning(buildLogLine(c.logPrefix(), fmt.Sprintf(format, args...)))
}

func (c *context) Error(args ...interface{}) {
	c.logger.Error(buildLogLine(c.logPrefix(), spaceOut(args...)))
}

func (c *context) Errorf(format string, args ...interface{}) {
	c.logger.Error(buildLogLine(c.logPrefix(), fmt.Sprintf(format, args...)))
}

func (c *context) logPrefix() string {
	c.stepper.Inc()
	return fmt.Sprintf("R %s %s", c.ShortID(), c.stepper)
}

// spaceOut joins the given args and separates them with spaces
func spaceOut(args ...interface{}) string {
	l := make([]string, len(args))
	for i, a := range args {
		l[i] = fmt.Sprint(a)
	}
	return strings.Join(l, " ")
}

func buildLogLine(l ...string) string {
	return strings.Join(l, " ")
}
