package sim

import "math"

type Metric[T any] interface {
	Name() string
	Observe(x T, t float64)
	Value() float64
	Reset()
}

type Observer[T any] interface {
	OnStep(x T, t float64)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc[T any] func(x T, t float64)

func (f ObserverFunc[T]) OnStep(x T, t float64) { f(x, t) }

type Config struct {
	Start float64
	End   float64
	Dt    float64 // initial step for adaptive runs, fixed step otherwise

	AbsTol float64
	RelTol float64
	MaxDt  float64 // 0 means unbounded
	MinDt  float64

	// MaxRejects bounds consecutive rejected trials before the run fails.
	MaxRejects    int
	Adaptive      bool
	ValidateState bool
}

// DefaultConfig integrates from 0 to 1 with an initial step of 0.1 and
// tolerances of 0.01.
func DefaultConfig() Config {
	return Config{
		Start:         0,
		End:           1,
		Dt:            0.1,
		AbsTol:        0.01,
		RelTol:        0.01,
		MinDt:         1e-12,
		MaxRejects:    500,
		Adaptive:      true,
		ValidateState: true,
	}
}

type Result[T any] struct {
	Final T

	// Times and Norms hold one entry per accepted state, the initial state
	// included. StepSizes holds one entry per accepted step.
	Times     []float64
	Norms     []float64
	StepSizes []float64

	Steps       int
	Rejected    int
	Evaluations int
	Metrics     map[string]float64
}

// FinalTime is the time of the last accepted state.
func (r *Result[T]) FinalTime() float64 {
	if len(r.Times) == 0 {
		return math.NaN()
	}
	return r.Times[len(r.Times)-1]
}

// MaxNorm is the largest recorded norm.
func (r *Result[T]) MaxNorm() float64 {
	m := 0.0
	for _, n := range r.Norms {
		if math.IsNaN(n) {
			return n
		}
		m = math.Max(m, n)
	}
	return m
}
