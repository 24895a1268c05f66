package gameloop

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which consumer operation failed during a step.
type ErrorKind int

const (
	// KindUpdate means Update returned an error while draining the accumulator.
	KindUpdate ErrorKind = iota + 1
	// KindRender means Render returned an error.
	KindRender
)

// String returns "update" or "render".
func (k ErrorKind) String() string {
	switch k {
	case KindUpdate:
		return "update"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// StepError wraps the error returned by the consumer during Step. The
// consumer's error is kept unchanged and is reachable through errors.Is and
// errors.As.
type StepError struct {
	Kind ErrorKind
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Kind, e.Err)
}

// Unwrap returns the consumer's error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// IsUpdateError reports whether err wraps a failed Update call.
func IsUpdateError(err error) bool {
	var se *StepError
	return errors.As(err, &se) && se.Kind == KindUpdate
}

// IsRenderError reports whether err wraps a failed Render call.
func IsRenderError(err error) bool {
	var se *StepError
	return errors.As(err, &se) && se.Kind == KindRender
}

// ErrContractViolation is the value wrapped by panics raised when the driver
// is found in a state that only misuse of AddAccumulatedTime can produce.
var ErrContractViolation = errors.New("gameloop: contract violation")
