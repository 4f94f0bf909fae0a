// Package ctx defines the Ctx type, which carries a cancellation signal,
// an optional deadline, and request-scoped values across API boundaries
// and between processes.
//
// Incoming requests to a server should create a Ctx, and outgoing calls to
// servers should accept a Ctx. The chain of function calls between must
// propagate the Ctx, optionally replacing it with a derived copy created by
// WithCancel, WithDeadline, WithTimeout, or WithValue.
//
// Cancelling a Ctx cancels every Ctx derived from it, but never its parent
// or its siblings.
package ctx
