package integrators

import "github.com/san-kum/frgflow/internal/state"

var eulerTableau = &tableau{
	name:  "euler",
	order: 1,
	c:     []float64{0},
	a:     [][]float64{{}},
	b:     []float64{1},
}

// NewEuler returns the forward Euler method.
func NewEuler[T state.Vector[T, S], S state.Scalar]() *Explicit[T, S] {
	return &Explicit[T, S]{tab: eulerTableau}
}
