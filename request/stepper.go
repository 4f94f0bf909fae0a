package request

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const stepSeparator = "_"

// Stepper numbers the log lines of a request. Branching a request opens a
// new lane, so lines interleaved across services can be re-ordered when
// reading logs.
type Stepper struct {
	mu    sync.Mutex
	steps []uint32
}

// NewStepper builds a stepper with a single lane
func NewStepper() *Stepper {
	return &Stepper{steps: []uint32{0}}
}

// ParseSteps rebuilds a stepper from its string representation
//
// e.g. 0100_0023_0040
func ParseSteps(s string) (*Stepper, error) {
	parts := strings.Split(s, stepSeparator)
	steps := make([]uint32, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid step %q", part)
		}
		steps[i] = uint32(n)
	}
	return &Stepper{steps: steps}, nil
}

// BranchOff opens a new lane and returns the stepper counting on it
func (s *Stepper) BranchOff() *Stepper {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.steps[len(s.steps)-1]++

	branch := make([]uint32, len(s.steps)+1)
	copy(branch, s.steps)
	return &Stepper{steps: branch}
}

// Inc increments the current lane and returns its new value
func (s *Stepper) Inc() uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.steps[len(s.steps)-1]++
	return uint(s.steps[len(s.steps)-1])
}

// String returns the zero-padded representation of all lanes
func (s *Stepper) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	for i, step := range s.steps {
		if i > 0 {
			buf.WriteString(stepSeparator)
		}
		fmt.Fprintf(&buf, "%04d", step)
	}
	return buf.String()
}
