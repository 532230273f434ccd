package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/frgflow/internal/integrators"
)

// Domain errors for integration runs.
var (
	// ErrDiverged indicates a state whose norm became NaN or Inf.
	ErrDiverged = errors.New("sim: state diverged (NaN or Inf norm)")

	// ErrTooManyRejections indicates the controlled stepper kept rejecting
	// trial steps.
	ErrTooManyRejections = errors.New("sim: too many rejected steps")

	// ErrStepTooSmall indicates the adaptive step size fell below MinDt.
	ErrStepTooSmall = integrators.ErrStepTooSmall

	// ErrNotAdaptive indicates an adaptive run with a stepper that has no
	// error estimate.
	ErrNotAdaptive = errors.New("sim: stepper has no error estimate")

	// ErrInvalidConfig indicates an unusable Config.
	ErrInvalidConfig = errors.New("sim: invalid config")
)

// StepError wraps an error with the step and time it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.6g): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
