package integrators

// System is the right-hand side of dx/dt = f(x, t). Derive writes f(x, t)
// into dxdt, which has the shape of x and may hold stale values.
type System[T any] interface {
	Derive(x, dxdt T, t float64)
}

// Func adapts a plain function to System.
type Func[T any] func(x, dxdt T, t float64)

func (f Func[T]) Derive(x, dxdt T, t float64) { f(x, dxdt, t) }

type Stepper[T any] interface {
	// Step advances x from t to t+dt and returns the new state.
	Step(sys System[T], x T, t, dt float64) T
	Order() int
	Name() string
}

// ErrorStepper is a Stepper with an embedded lower order solution used to
// estimate the local truncation error.
type ErrorStepper[T any] interface {
	Stepper[T]
	// StepWithError advances x using the derivative dxdt already evaluated
	// at (x, t). It returns the new state and the error estimate.
	StepWithError(sys System[T], x, dxdt T, t, dt float64) (xNew, xErr T)
	ErrorOrder() int
}
