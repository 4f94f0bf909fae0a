package request

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"time"

	"github.com/pkg/errors"

	"github.com/rkusa/ctx"
)

// payload is the wire form of a request context: the request ID, the step
// counters, the key/value bag, and the absolute deadline when one is set
type payload struct {
	ID       string
	Steps    string
	KV       map[interface{}]interface{}
	Deadline time.Time
}

// MarshalGob marshals a request context in gob. Values placed in the bag
// must be registered with gob.Register to survive the trip.
func MarshalGob(c Ctx) ([]byte, error) {
	rc, ok := c.(*context)
	if !ok {
		return nil, errors.Errorf("cannot marshal foreign request context %T", c)
	}

	p := payload{
		ID:    rc.id,
		Steps: rc.stepper.String(),
		KV:    rc.kv.snapshot(),
	}
	if deadline, ok := rc.Deadline(); ok {
		p.Deadline = deadline
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, errors.Wrap(err, "failed to marshal request context")
	}
	return buf.Bytes(), nil
}

// UnmarshalGob rebuilds a request context from its gob form. The context
// is derived from parent, and a deadline carried over the wire is re-armed
// locally, so the remote cancellation point is honoured on this side of
// the boundary too.
func UnmarshalGob(parent ctx.Ctx, data []byte, opts ...Option) (Ctx, error) {
	var p payload
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal request context")
	}
	return fromPayload(parent, &p, opts)
}

// MarshalText wraps the gob form of a request context in base64, so it
// can travel in a text header
func MarshalText(c Ctx) ([]byte, error) {
	data, err := MarshalGob(c)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, base64.StdEncoding.EncodedLen(len(data)))
	base64.StdEncoding.Encode(buf, data)
	return buf, nil
}

// UnmarshalText rebuilds a request context from its base64 form
func UnmarshalText(parent ctx.Ctx, data []byte, opts ...Option) (Ctx, error) {
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(raw, data)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode request context")
	}
	return UnmarshalGob(parent, raw[:n], opts...)
}

func fromPayload(parent ctx.Ctx, p *payload, opts []Option) (Ctx, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = NopLogger()
	}

	var core ctx.Ctx
	var cancel ctx.CancelFunc
	if !p.Deadline.IsZero() {
		core, cancel = ctx.WithDeadline(parent, p.Deadline)
	} else {
		core, cancel = ctx.WithCancel(parent)
	}

	stepper, err := ParseSteps(p.Steps)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "invalid request context steps")
	}

	kv := newKV()
	for k, v := range p.KV {
		kv.Map[k] = v
	}

	return &context{
		Ctx:     core,
		cancel:  cancel,
		logger:  logger,
		id:      p.ID,
		stepper: stepper,
		kv:      kv,
	}, nil
}
