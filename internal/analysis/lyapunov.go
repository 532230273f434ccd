package analysis

import (
	"math"

	"github.com/san-kum/frgflow/internal/integrators"
	"github.com/san-kum/frgflow/internal/state"
)

// LyapunovExponent estimates the mean exponential growth rate of the
// perturbation dx along the flow from x0, using fixed steps of dt. The
// perturbed trajectory is renormalised to the initial separation after
// every step.
func LyapunovExponent[T state.Vector[T, S], S state.Scalar](
	sys integrators.System[T],
	st integrators.Stepper[T],
	x0, dx T,
	start, end, dt float64,
) float64 {
	d0 := dx.NormInf()
	if d0 == 0 || !(end > start) || !(dt > 0) {
		return 0
	}

	x := x0.Clone()
	xp := x0.Add(dx)
	t := start
	sumLog := 0.0

	for t < end {
		h := math.Min(dt, end-t)
		x = st.Step(sys, x, t, h)
		xp = st.Step(sys, xp, t, h)
		t += h

		sep := xp.Sub(x)
		d := sep.NormInf()
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return math.NaN()
		}
		sumLog += math.Log(d / d0)

		xp = sep.MulScalarAssign(state.Real[S](d0 / d)).AddAssign(x)
	}

	return sumLog / (t - start)
}
