package integrators_test

import (
	"testing"

	"github.com/san-kum/frgflow/internal/gf"
	"github.com/san-kum/frgflow/internal/integrators"
	"github.com/san-kum/frgflow/internal/state"
)

func benchState() *pair {
	pos := gf.MustNew[float64](gf.Bosonic(50), gf.Fermionic(50))
	pos.Fill(func(gf.Idx) float64 { return 1 })
	return state.NewTuple2[grid, grid, float64](pos, pos.Zero())
}

func benchmarkStepper(b *testing.B, st integrators.Stepper[*pair]) {
	x := benchState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = st.Step(oscillator, x, 0, 0.01)
	}
}

func BenchmarkEuler(b *testing.B) { benchmarkStepper(b, integrators.NewEuler[*pair, float64]()) }
func BenchmarkRK4(b *testing.B)   { benchmarkStepper(b, integrators.NewRK4[*pair, float64]()) }
func BenchmarkRK45(b *testing.B)  { benchmarkStepper(b, integrators.NewDormandPrince[*pair, float64]()) }
func BenchmarkCashKarp(b *testing.B) {
	benchmarkStepper(b, integrators.NewCashKarp[*pair, float64]())
}

func BenchmarkControlled(b *testing.B) {
	c, err := integrators.NewControlled[*pair, float64](integrators.NewCashKarp[*pair, float64](), 1e-6, 1e-6)
	if err != nil {
		b.Fatal(err)
	}
	x := benchState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.TryStep(oscillator, x, 0, 0.01); err != nil {
			b.Fatal(err)
		}
	}
}
