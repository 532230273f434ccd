package integrators

import "github.com/san-kum/frgflow/internal/state"

var rk4Tableau = &tableau{
	name:  "rk4",
	order: 4,
	c:     []float64{0, 0.5, 0.5, 1},
	a: [][]float64{
		{},
		{0.5},
		{0, 0.5},
		{0, 0, 1},
	},
	b: []float64{1.0 / 6.0, 1.0 / 3.0, 1.0 / 3.0, 1.0 / 6.0},
}

// NewRK4 returns the classic fourth order Runge-Kutta method.
func NewRK4[T state.Vector[T, S], S state.Scalar]() *Explicit[T, S] {
	return &Explicit[T, S]{tab: rk4Tableau}
}
