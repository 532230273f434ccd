package integrators_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/frgflow/internal/gf"
	"github.com/san-kum/frgflow/internal/integrators"
	"github.com/san-kum/frgflow/internal/state"
)

type (
	grid = *gf.Grid[float64]
	pair = state.Tuple2[grid, grid, float64]
)

var decay = integrators.Func[grid](func(x, dxdt grid, _ float64) {
	dxdt.Assign(x).MulScalarAssign(-1)
})

// oscillator is x” = -x with position in M0 and velocity in M1.
var oscillator = integrators.Func[*pair](func(x, dxdt *pair, _ float64) {
	dxdt.M0.Assign(x.M1)
	dxdt.M1.Assign(x.M0).MulScalarAssign(-1)
})

func newDecayState() grid {
	g := gf.MustNew[float64](gf.Fermionic(3))
	g.Fill(func(idx gf.Idx) float64 { return 0.25 * float64(idx[0]+4) })
	return g
}

func newOscillatorState() *pair {
	pos := gf.MustNew[float64](gf.Range(0, 4))
	pos.Fill(func(idx gf.Idx) float64 { return float64(idx[0] + 1) })
	return state.NewTuple2[grid, grid, float64](pos, pos.Zero())
}

func integrate[T any](st integrators.Stepper[T], sys integrators.System[T], x T, end, dt float64) T {
	n := int(math.Round(end / dt))
	for i := 0; i < n; i++ {
		x = st.Step(sys, x, float64(i)*dt, dt)
	}
	return x
}

func decayError(st integrators.Stepper[grid], dt float64) float64 {
	x0 := newDecayState()
	x := integrate(st, decay, x0, 1, dt)
	return x.Sub(x0.MulScalar(math.Exp(-1))).NormInf()
}

func steppers() []integrators.Stepper[grid] {
	return []integrators.Stepper[grid]{
		integrators.NewEuler[grid, float64](),
		integrators.NewRK4[grid, float64](),
		integrators.NewDormandPrince[grid, float64](),
		integrators.NewCashKarp[grid, float64](),
	}
}

func TestStepperAccuracy(t *testing.T) {
	tol := map[string]float64{
		"euler":    5e-3,
		"rk4":      1e-9,
		"dopri5":   1e-11,
		"cashkarp": 1e-11,
	}
	for _, st := range steppers() {
		t.Run(st.Name(), func(t *testing.T) {
			assert.Less(t, decayError(st, 0.01), tol[st.Name()])
		})
	}
}

func TestConvergenceOrder(t *testing.T) {
	for _, st := range steppers() {
		t.Run(st.Name(), func(t *testing.T) {
			h := 0.1
			if st.Order() == 1 {
				h = 0.01
			}
			ratio := decayError(st, h) / decayError(st, h/2)
			want := math.Pow(2, float64(st.Order()))
			assert.Greater(t, ratio, 0.6*want)
			assert.Less(t, ratio, 1.6*want)
		})
	}
}

func TestStepDoesNotMutate(t *testing.T) {
	x := newOscillatorState()
	before := x.Clone()
	for _, st := range []integrators.Stepper[*pair]{
		integrators.NewRK4[*pair, float64](),
		integrators.NewCashKarp[*pair, float64](),
	} {
		next := st.Step(oscillator, x, 0, 0.1)
		assert.NotSame(t, x, next)
		assert.Equal(t, before.M0.Data(), x.M0.Data())
		assert.Equal(t, before.M1.Data(), x.M1.Data())
	}
}

func TestOscillatorPeriod(t *testing.T) {
	x0 := newOscillatorState()
	st := integrators.NewRK4[*pair, float64]()
	x := integrate[*pair](st, oscillator, x0, 2*math.Pi, 2*math.Pi/1000)

	assert.InDeltaSlice(t, x0.M0.Data(), x.M0.Data(), 1e-8)
	assert.InDeltaSlice(t, x0.M1.Data(), x.M1.Data(), 1e-8)
}

func TestEmbeddedErrorEstimate(t *testing.T) {
	constant := integrators.Func[grid](func(_, dxdt grid, _ float64) { dxdt.Fill(func(gf.Idx) float64 { return 1 }) })

	for _, st := range []integrators.ErrorStepper[grid]{
		integrators.NewDormandPrince[grid, float64](),
		integrators.NewCashKarp[grid, float64](),
	} {
		t.Run(st.Name(), func(t *testing.T) {
			x := newDecayState()
			dxdt := x.Zero()
			constant.Derive(x, dxdt, 0)
			xNew, xErr := st.StepWithError(constant, x, dxdt, 0, 0.5)
			assert.InDeltaSlice(t, x.AddScalar(0.5).Data(), xNew.Data(), 1e-14)
			assert.Less(t, xErr.NormInf(), 1e-14)

			dxdt = x.Zero()
			decay.Derive(x, dxdt, 0)
			_, xErr = st.StepWithError(decay, x, dxdt, 0, 0.5)
			assert.Greater(t, xErr.NormInf(), 0.0)
		})
	}
}

func TestNewControlledTolerance(t *testing.T) {
	tests := []struct {
		name     string
		abs, rel float64
		wantErr  bool
	}{
		{"ok", 1e-6, 1e-6, false},
		{"abs only", 1e-6, 0, false},
		{"zero abs", 0, 1e-6, true},
		{"negative rel", 1e-6, -1, true},
		{"nan", math.NaN(), 1e-6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := integrators.NewControlled[grid, float64](integrators.NewCashKarp[grid, float64](), tt.abs, tt.rel)
			if tt.wantErr {
				assert.ErrorIs(t, err, integrators.ErrBadTolerance)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func newControlled(t *testing.T, tol float64) *integrators.Controlled[grid, float64] {
	t.Helper()
	c, err := integrators.NewControlled[grid, float64](integrators.NewCashKarp[grid, float64](), tol, tol)
	require.NoError(t, err)
	return c
}

func TestControlledRejectsLargeStep(t *testing.T) {
	c := newControlled(t, 1e-10)
	x := newDecayState()

	att, err := c.TryStep(decay, x, 0, 1)
	require.NoError(t, err)
	assert.False(t, att.Accepted)
	assert.Nil(t, att.X)
	assert.Greater(t, att.Err, 1.0)
	assert.Less(t, att.NextDt, 1.0)
	assert.GreaterOrEqual(t, att.NextDt, 0.2)
}

func TestControlledGrowsSmallStep(t *testing.T) {
	c := newControlled(t, 1e-6)
	x := newDecayState()
	before := x.Clone()

	att, err := c.TryStep(decay, x, 0, 1e-4)
	require.NoError(t, err)
	assert.True(t, att.Accepted)
	assert.Less(t, att.Err, 0.5)
	assert.Greater(t, att.NextDt, 1e-4)
	assert.LessOrEqual(t, att.NextDt, 4.5e-4+1e-15)
	assert.Equal(t, before.Data(), x.Data())
	assert.InDeltaSlice(t, x.MulScalar(math.Exp(-1e-4)).Data(), att.X.Data(), 1e-12)
}

func TestControlledMaxDt(t *testing.T) {
	c := newControlled(t, 1e-6)
	c.MaxDt = 0.05
	x := newDecayState()

	att, err := c.TryStep(decay, x, 0, 0.1)
	require.NoError(t, err)
	assert.False(t, att.Accepted)
	assert.Equal(t, 0.05, att.NextDt)

	att, err = c.TryStep(decay, x, 0, 1e-5)
	require.NoError(t, err)
	assert.True(t, att.Accepted)
	assert.LessOrEqual(t, att.NextDt, 0.05)
}

func TestControlledMaxDtRounding(t *testing.T) {
	c := newControlled(t, 1e-6)
	c.MaxDt = 0.1
	x := newDecayState()

	dt := 1 - 0.8999999999999999
	require.Greater(t, dt, c.MaxDt)

	att, err := c.TryStep(decay, x, 0.8999999999999999, dt)
	require.NoError(t, err)
	assert.True(t, att.Accepted)
	assert.Equal(t, dt, att.Dt)

	att, err = c.TryStep(decay, x, 0, 0.1001)
	require.NoError(t, err)
	assert.False(t, att.Accepted)
}

func TestControlledStepTooSmall(t *testing.T) {
	c := newControlled(t, 1e-6)
	c.MinDt = 1e-8
	x := newDecayState()

	for _, dt := range []float64{0, -0.1, math.NaN(), 1e-9} {
		_, err := c.TryStep(decay, x, 0, dt)
		assert.ErrorIs(t, err, integrators.ErrStepTooSmall, "dt=%g", dt)
	}
}

func TestControlledRejectsNaN(t *testing.T) {
	c := newControlled(t, 1e-6)
	poison := integrators.Func[grid](func(_, dxdt grid, _ float64) {
		dxdt.Fill(func(gf.Idx) float64 { return math.NaN() })
	})

	att, err := c.TryStep(poison, newDecayState(), 0, 0.1)
	require.NoError(t, err)
	assert.False(t, att.Accepted)
	assert.InDelta(t, 0.02, att.NextDt, 1e-15)
}

func TestControlledComplexRotation(t *testing.T) {
	type cgrid = *gf.Grid[complex128]
	rotate := integrators.Func[cgrid](func(x, dxdt cgrid, _ float64) {
		dxdt.Assign(x).MulScalarAssign(1i)
	})
	c, err := integrators.NewControlled[cgrid, complex128](integrators.NewCashKarp[cgrid, complex128](), 1e-10, 1e-10)
	require.NoError(t, err)

	x := gf.MustNew[complex128](gf.Bosonic(2))
	x.Fill(func(idx gf.Idx) complex128 { return complex(float64(idx[0]), 1) })
	x0 := x.Clone()

	tt, dt, end := 0.0, 0.1, math.Pi
	for tt < end {
		if tt+dt > end {
			dt = end - tt
		}
		att, err := c.TryStep(rotate, x, tt, dt)
		require.NoError(t, err)
		if att.Accepted {
			x = att.X
			tt += att.Dt
		}
		dt = att.NextDt
	}

	want := x0.MulScalar(cmplx.Exp(complex(0, math.Pi)))
	assert.Less(t, x.Sub(want).NormInf(), 1e-7)
}
