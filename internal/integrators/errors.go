package integrators

import "errors"

var (
	// ErrBadTolerance indicates negative or all-zero error tolerances.
	ErrBadTolerance = errors.New("integrators: invalid tolerance")

	// ErrStepTooSmall indicates a step size that is not positive or fell
	// below the configured minimum.
	ErrStepTooSmall = errors.New("integrators: step size below minimum")
)
