package integrators

import "github.com/san-kum/frgflow/internal/state"

// tableau is a Butcher tableau. a[i] holds the coefficients of stage i on the
// previous stages, so len(a[i]) == i. e holds b minus the embedded weights and
// is nil for methods without an error estimate.
type tableau struct {
	name     string
	order    int
	errOrder int
	c        []float64
	a        [][]float64
	b        []float64
	e        []float64
}

func (tb *tableau) stages() int { return len(tb.c) }

// Explicit is a fixed-step explicit Runge-Kutta method.
type Explicit[T state.Vector[T, S], S state.Scalar] struct {
	tab *tableau
}

func (r *Explicit[T, S]) Name() string { return r.tab.name }
func (r *Explicit[T, S]) Order() int   { return r.tab.order }

func (r *Explicit[T, S]) Step(sys System[T], x T, t, dt float64) T {
	dxdt := x.Zero()
	sys.Derive(x, dxdt, t)
	k := r.eval(sys, x, dxdt, t, dt)
	return combine[T, S](x.Clone(), dt, r.tab.b, k)
}

// eval returns the stage derivatives k_1..k_s with k_1 = dxdt.
func (r *Explicit[T, S]) eval(sys System[T], x, dxdt T, t, dt float64) []T {
	n := r.tab.stages()
	k := make([]T, n)
	k[0] = dxdt
	for i := 1; i < n; i++ {
		xi := combine[T, S](x.Clone(), dt, r.tab.a[i], k)
		k[i] = x.Zero()
		sys.Derive(xi, k[i], t+r.tab.c[i]*dt)
	}
	return k
}

// Embedded is an explicit Runge-Kutta pair with an error estimate.
type Embedded[T state.Vector[T, S], S state.Scalar] struct {
	Explicit[T, S]
}

func (r *Embedded[T, S]) ErrorOrder() int { return r.tab.errOrder }

func (r *Embedded[T, S]) StepWithError(sys System[T], x, dxdt T, t, dt float64) (T, T) {
	k := r.eval(sys, x, dxdt, t, dt)
	xNew := combine[T, S](x.Clone(), dt, r.tab.b, k)
	xErr := combine[T, S](x.Zero(), dt, r.tab.e, k)
	return xNew, xErr
}

// combine adds dt*Σ w_j k_j to acc and returns it. Zero weights are skipped.
func combine[T state.Vector[T, S], S state.Scalar](acc T, dt float64, w []float64, k []T) T {
	for j, wj := range w {
		if wj == 0 {
			continue
		}
		acc.AddAssign(k[j].MulScalar(state.Real[S](dt * wj)))
	}
	return acc
}
