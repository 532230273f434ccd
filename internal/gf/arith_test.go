package gf

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp(axes ...Axis) *Grid[float64] {
	g := MustNew[float64](axes...)
	return g.Fill(func(idx Idx) float64 {
		v := 0.0
		for k, c := range idx {
			v += float64(c) * float64(k+1) * 0.75
		}
		return v - 0.3
	})
}

func TestArith_AddSubRoundTrip(t *testing.T) {
	g := ramp(Bosonic(3), Fermionic(3))
	h := ramp(Bosonic(3), Fermionic(3)).MulScalar(-1.7).AddScalar(0.25)

	back := g.Add(h).Sub(h)
	for i, v := range back.Data() {
		assert.InDelta(t, g.AtOffset(i), v, 1e-12)
	}
}

func TestArith_IntegerExact(t *testing.T) {
	g := MustNew[int](Range(-1, 3)).Fill(func(idx Idx) int { return idx[0] * 3 })
	h := MustNew[int](Range(-1, 3)).Fill(func(idx Idx) int { return 7 - idx[0] })

	assert.Equal(t, g.Data(), g.Add(h).Sub(h).Data())
	assert.Equal(t, []int{-3 * 8, 0, 3 * 6, 6 * 5}, g.Mul(h).Data())
	assert.Equal(t, []int{3, 0, -3, -6}, g.Neg().Data())
	assert.Equal(t, []int{3, 0, 3, 6}, g.Abs().Data())
	assert.Equal(t, []int{4, 1, -2, -5}, g.SubFrom(1).Data())
}

func TestArith_BinaryDoesNotMutate(t *testing.T) {
	g := ramp(Fermionic(2))
	h := ramp(Fermionic(2))
	before := g.Clone()

	_ = g.Add(h)
	_ = g.Mul(h)
	_ = g.Neg()
	_ = g.MulScalar(3)
	assert.Equal(t, before.Data(), g.Data())
}

func TestArith_Assign(t *testing.T) {
	g := MustNew[float64](Fermionic(1)).Fill(func(idx Idx) float64 { return 2 })
	h := MustNew[float64](Fermionic(1)).Fill(func(idx Idx) float64 { return 4 })

	r := g.AddAssign(h)
	assert.Same(t, g, r)
	assert.Equal(t, []float64{6, 6}, g.Data())

	g.SubAssign(h).MulAssign(h).DivAssign(h)
	assert.Equal(t, []float64{2, 2}, g.Data())

	g.AddScalarAssign(1).MulScalarAssign(3).SubScalarAssign(1).DivScalarAssign(4)
	assert.Equal(t, []float64{2, 2}, g.Data())
}

func TestArith_ScalarLaws(t *testing.T) {
	g := ramp(Bosonic(2), Fermionic(4))

	for _, s := range []float64{0.5, -3, 1e-3, 17} {
		back := g.MulScalar(s).DivScalar(s)
		for i, v := range back.Data() {
			assert.InDelta(t, g.AtOffset(i), v, 1e-12)
		}
	}
	assert.Equal(t, g.Data(), g.AddScalar(0).Data())
	assert.Equal(t, g.Data(), g.MulScalar(1).Data())
	shifted := g.SubScalar(2).AddScalar(2)
	for i, v := range shifted.Data() {
		assert.InDelta(t, g.AtOffset(i), v, 1e-12)
	}
}

func TestArith_AbsAndNorm(t *testing.T) {
	g := ramp(Bosonic(3), Fermionic(2))
	a := g.Abs()

	maxCell := 0.0
	for i, v := range a.Data() {
		require.GreaterOrEqual(t, v, 0.0)
		assert.Equal(t, math.Abs(g.AtOffset(i)), v)
		maxCell = math.Max(maxCell, v)
	}
	assert.Equal(t, maxCell, g.NormInf())
	assert.Equal(t, a.NormInf(), g.NormInf())
}

func TestArith_Complex(t *testing.T) {
	g := MustNew[complex128](Fermionic(2)).Fill(func(idx Idx) complex128 {
		return complex(float64(idx[0]), 1)
	})

	a := g.Abs()
	for i, v := range a.Data() {
		assert.Equal(t, 0.0, imag(v))
		assert.InDelta(t, cmplx.Abs(g.AtOffset(i)), real(v), 1e-15)
	}
	assert.InDelta(t, math.Sqrt(5), g.NormInf(), 1e-15)

	prod := g.Mul(g.Neg())
	assert.InDelta(t, 0, cmplx.Abs(prod.AtOffset(0)+g.AtOffset(0)*g.AtOffset(0)), 1e-12)

	q := g.DivScalar(2i)
	assert.Equal(t, g.AtOffset(3)/2i, q.AtOffset(3))
}

func TestArith_NormNaN(t *testing.T) {
	g := MustNew[float64](Fermionic(2))
	g.SetOffset(1, math.NaN())
	assert.True(t, math.IsNaN(g.NormInf()))
}

func TestArith_ParallelMatchesSerial(t *testing.T) {
	// large enough to fan out over several workers
	g := ramp(Bosonic(60), Fermionic(200))
	require.Greater(t, g.Len(), 2*minChunk)
	h := ramp(Bosonic(60), Fermionic(200)).AddScalar(1.5)

	sum := g.Add(h)
	for i := range sum.Data() {
		if sum.AtOffset(i) != g.AtOffset(i)+h.AtOffset(i) {
			t.Fatalf("cell %d: got %v want %v", i, sum.AtOffset(i), g.AtOffset(i)+h.AtOffset(i))
		}
	}

	serial := maxMagnitude(g.Data())
	assert.Equal(t, serial, g.NormInf())
}
