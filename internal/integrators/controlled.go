package integrators

import (
	"fmt"
	"math"

	"github.com/san-kum/frgflow/internal/state"
)

const (
	safety      = 0.9
	minDecrease = 0.2
	maxIncrease = 5.0
)

// Attempt reports the outcome of a single trial step.
type Attempt[T any] struct {
	X        T       // new state, zero value when rejected
	Accepted bool    // whether X advances the solution
	Dt       float64 // step size tried
	NextDt   float64 // proposed size for the following try
	Err      float64 // scaled error, <= 1 when accepted
}

// Controlled runs an ErrorStepper under error control. For every cell the
// local error is scaled by AbsTol + RelTol*(|x| + |dt|*|dxdt|) and the trial
// is accepted when the largest scaled error is at most one.
type Controlled[T state.Vector[T, S], S state.Scalar] struct {
	stepper ErrorStepper[T]

	AbsTol float64
	RelTol float64
	// MaxDt caps the step size when positive.
	MaxDt float64
	// MinDt makes TryStep fail when the step size falls below it.
	MinDt float64
}

func NewControlled[T state.Vector[T, S], S state.Scalar](stepper ErrorStepper[T], absTol, relTol float64) (*Controlled[T, S], error) {
	if absTol <= 0 || relTol < 0 || math.IsNaN(absTol) || math.IsNaN(relTol) {
		return nil, fmt.Errorf("%w: abs=%g rel=%g", ErrBadTolerance, absTol, relTol)
	}
	return &Controlled[T, S]{stepper: stepper, AbsTol: absTol, RelTol: relTol}, nil
}

func (c *Controlled[T, S]) Stepper() ErrorStepper[T] { return c.stepper }

// TryStep attempts one step of size dt from (x, t). x is never modified.
func (c *Controlled[T, S]) TryStep(sys System[T], x T, t, dt float64) (Attempt[T], error) {
	if !(dt > 0) || dt < c.MinDt {
		return Attempt[T]{Dt: dt}, fmt.Errorf("%w: dt=%g at t=%g", ErrStepTooSmall, dt, t)
	}
	if c.aboveMax(dt) {
		return Attempt[T]{Dt: dt, NextDt: c.MaxDt}, nil
	}

	dxdt := x.Zero()
	sys.Derive(x, dxdt, t)
	xNew, xErr := c.stepper.StepWithError(sys, x, dxdt, t, dt)

	e := c.scaledError(x, dxdt, xErr, dt)
	if math.IsNaN(e) || e > 1 {
		return Attempt[T]{Dt: dt, NextDt: dt * c.decrease(e), Err: e}, nil
	}

	next := dt * c.increase(e)
	if c.MaxDt > 0 && next > c.MaxDt {
		next = c.MaxDt
	}
	return Attempt[T]{X: xNew, Accepted: true, Dt: dt, NextDt: next, Err: e}, nil
}

// maxDtSlack is the relative overshoot of MaxDt still accepted. Rounding in t
// can widen a final step past MaxDt.
const maxDtSlack = 1e-9

func (c *Controlled[T, S]) aboveMax(dt float64) bool {
	return c.MaxDt > 0 && dt > c.MaxDt*(1+maxDtSlack)+c.MinDt
}

func (c *Controlled[T, S]) scaledError(x, dxdt, xErr T, dt float64) float64 {
	den := x.Abs().AddAssign(dxdt.Abs().MulScalar(state.Real[S](math.Abs(dt))))
	den.MulScalarAssign(state.Real[S](c.RelTol)).AddScalarAssign(state.Real[S](c.AbsTol))
	return xErr.Abs().DivAssign(den).NormInf()
}

func (c *Controlled[T, S]) decrease(e float64) float64 {
	if math.IsNaN(e) {
		return minDecrease
	}
	q := float64(c.stepper.ErrorOrder())
	return math.Max(safety*math.Pow(e, -1/(q-1)), minDecrease)
}

func (c *Controlled[T, S]) increase(e float64) float64 {
	if e >= 0.5 {
		return 1
	}
	p := float64(c.stepper.Order())
	e = math.Max(e, math.Pow(maxIncrease, -p))
	return safety * math.Pow(e, -1/p)
}
