package state_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/frgflow/internal/gf"
	"github.com/san-kum/frgflow/internal/state"
)

type grid = *gf.Grid[float64]
type pair = state.Tuple2[grid, grid, float64]

type quad = state.Tuple4[grid, grid, grid, grid, float64]

var _ state.Vector[grid, float64] = (*gf.Grid[float64])(nil)
var _ state.Vector[*pair, float64] = (*pair)(nil)
var _ state.Vector[*quad, float64] = (*quad)(nil)
var _ state.Vector[scalar, float64] = scalar(0)

// scalar is a value-type member: its Assign forms return the new value
// rather than mutating.
type scalar float64

func (s scalar) Clone() scalar                    { return s }
func (s scalar) Zero() scalar                     { return 0 }
func (s scalar) Assign(o scalar) scalar           { return o }
func (s scalar) Add(o scalar) scalar              { return s + o }
func (s scalar) Sub(o scalar) scalar              { return s - o }
func (s scalar) Mul(o scalar) scalar              { return s * o }
func (s scalar) Div(o scalar) scalar              { return s / o }
func (s scalar) Neg() scalar                      { return -s }
func (s scalar) Abs() scalar                      { return scalar(math.Abs(float64(s))) }
func (s scalar) AddAssign(o scalar) scalar        { return s + o }
func (s scalar) SubAssign(o scalar) scalar        { return s - o }
func (s scalar) MulAssign(o scalar) scalar        { return s * o }
func (s scalar) DivAssign(o scalar) scalar        { return s / o }
func (s scalar) AddScalar(v float64) scalar       { return s + scalar(v) }
func (s scalar) SubScalar(v float64) scalar       { return s - scalar(v) }
func (s scalar) SubFrom(v float64) scalar         { return scalar(v) - s }
func (s scalar) MulScalar(v float64) scalar       { return s * scalar(v) }
func (s scalar) DivScalar(v float64) scalar       { return s / scalar(v) }
func (s scalar) AddScalarAssign(v float64) scalar { return s + scalar(v) }
func (s scalar) SubScalarAssign(v float64) scalar { return s - scalar(v) }
func (s scalar) MulScalarAssign(v float64) scalar { return s * scalar(v) }
func (s scalar) DivScalarAssign(v float64) scalar { return s / scalar(v) }
func (s scalar) NormInf() float64                 { return math.Abs(float64(s)) }

func filled(fn func(gf.Idx) float64, axes ...gf.Axis) grid {
	return gf.MustNew[float64](axes...).Fill(fn)
}

func newPair(a, b float64) *pair {
	return state.NewTuple2[grid, grid, float64](
		filled(func(idx gf.Idx) float64 { return a + 0.1*float64(idx[0]) }, gf.Fermionic(3)),
		filled(func(idx gf.Idx) float64 { return b * float64(idx[0]-idx[1]) }, gf.Bosonic(2), gf.Fermionic(2)),
	)
}

func expectCells(got, want grid, tol float64) {
	ExpectWithOffset(1, got.SameShape(want)).To(BeTrue())
	for i, v := range want.Data() {
		ExpectWithOffset(1, got.AtOffset(i)).To(BeNumerically("~", v, tol), "cell %d", i)
	}
}

var _ = Describe("Tuple2", func() {
	var l, r *pair

	BeforeEach(func() {
		l = newPair(1.5, 0.7)
		r = newPair(-0.4, 2.5)
	})

	It("reports its arity", func() {
		Expect(l.Len()).To(Equal(2))
		Expect(state.NewTuple3[scalar, scalar, scalar, float64](1, 2, 3).Len()).To(Equal(3))
	})

	DescribeTable("binary operators apply member-wise",
		func(op func(a, b *pair) *pair, member func(a, b grid) grid) {
			res := op(l, r)
			expectCells(res.M0, member(l.M0, r.M0), 0)
			expectCells(res.M1, member(l.M1, r.M1), 0)
		},
		Entry("add", (*pair).Add, grid.Add),
		Entry("sub", (*pair).Sub, grid.Sub),
		Entry("mul", (*pair).Mul, grid.Mul),
		Entry("div", func(a, b *pair) *pair { return a.Div(b.AddScalar(10)) },
			func(a, b grid) grid { return a.Div(b.AddScalar(10)) }),
	)

	It("leaves operands untouched by binary operators", func() {
		before := l.Clone()
		_ = l.Add(r).Mul(l).Neg().Abs()
		expectCells(l.M0, before.M0, 0)
		expectCells(l.M1, before.M1, 0)
	})

	It("mutates the receiver with compound assignment", func() {
		m0, m1 := l.M0, l.M1
		want := l.Add(r)

		res := l.AddAssign(r)
		Expect(res).To(BeIdenticalTo(l))
		Expect(l.M0).To(BeIdenticalTo(m0))
		Expect(l.M1).To(BeIdenticalTo(m1))
		expectCells(l.M0, want.M0, 0)
		expectCells(l.M1, want.M1, 0)

		l.SubAssign(r)
		d := r.Abs().AddScalar(1)
		l.MulAssign(d).DivAssign(d)
		orig := newPair(1.5, 0.7)
		expectCells(l.M0, orig.M0, 1e-12)
		expectCells(l.M1, orig.M1, 1e-12)
	})

	It("round trips (L + R) - R", func() {
		back := l.Add(r).Sub(r)
		expectCells(back.M0, l.M0, 1e-12)
		expectCells(back.M1, l.M1, 1e-12)
	})

	It("obeys the scalar laws", func() {
		for _, s := range []float64{2, -0.5, 1e-3} {
			back := l.MulScalar(s).DivScalar(s)
			expectCells(back.M0, l.M0, 1e-12)
			expectCells(back.M1, l.M1, 1e-12)
		}
		expectCells(l.AddScalar(0).M1, l.M1, 0)
		expectCells(l.MulScalar(1).M0, l.M0, 0)

		expectCells(state.ScalarPlus(3.0, l).M0, l.AddScalar(3).M0, 0)
		expectCells(state.ScalarTimes(3.0, l).M1, l.MulScalar(3).M1, 0)
		expectCells(state.ScalarMinus(3.0, l).M0, l.Neg().AddScalar(3).M0, 1e-15)
		expectCells(l.SubScalar(3).M1, l.AddScalar(-3).M1, 0)
	})

	It("applies in-place scalar forms to every member", func() {
		want := l.MulScalar(4).AddScalar(1)
		l.MulScalarAssign(4).AddScalarAssign(1)
		expectCells(l.M0, want.M0, 0)
		expectCells(l.M1, want.M1, 0)

		l.SubScalarAssign(1).DivScalarAssign(4)
		expectCells(l.M0, newPair(1.5, 0.7).M0, 1e-12)
	})

	It("deep copies on Clone", func() {
		c := l.Clone()
		Expect(c.M0).NotTo(BeIdenticalTo(l.M0))
		c.M0.SetOffset(0, 42)
		Expect(l.M0.AtOffset(0)).NotTo(Equal(42.0))
	})

	It("copies values on Assign without aliasing", func() {
		z := l.Zero()
		Expect(z.NormInf()).To(Equal(0.0))
		z.Assign(l)
		expectCells(z.M1, l.M1, 0)
		z.M1.SetOffset(3, -9)
		Expect(l.M1.AtOffset(3)).NotTo(Equal(-9.0))
	})

	It("takes the norm as the largest member norm", func() {
		x := state.NewTuple2[grid, grid, float64](
			filled(func(gf.Idx) float64 { return 1.1 }, gf.Fermionic(4)),
			filled(func(gf.Idx) float64 { return 1.2 }, gf.Bosonic(4), gf.Fermionic(4)),
		)
		Expect(x.Abs().NormInf()).To(Equal(1.2))
		Expect(state.Norm[*pair, float64](x)).To(Equal(math.Max(x.M0.NormInf(), x.M1.NormInf())))

		x.M0.SetOffset(2, -5)
		Expect(x.NormInf()).To(Equal(5.0))
		Expect(x.Abs().M0.AtOffset(2)).To(Equal(5.0))
	})

	It("propagates NaN through the norm", func() {
		l.M1.SetOffset(0, math.NaN())
		Expect(math.IsNaN(l.NormInf())).To(BeTrue())
	})
})

var _ = Describe("default construction", func() {
	It("builds an all-zero composite from freshly allocated members", func() {
		x := state.NewTuple2[grid, grid, float64](gf.MustNew[float64](gf.Range(-2, 2)), gf.MustNew[float64](gf.Fermionic(1), gf.Bosonic(1)))

		Expect(x.M0.Data()).To(Equal([]float64{0, 0, 0, 0}))
		Expect(x.M1.Data()).To(HaveLen(6))
		Expect(x.NormInf()).To(BeZero())

		y := x.AddScalar(1.5)
		Expect(y.NormInf()).To(Equal(1.5))
		Expect(x.NormInf()).To(BeZero())
	})

	It("derives a default composite of the same shape with Zero", func() {
		x := newPair(2, 3)
		z := x.Zero()

		Expect(z.M0.Axes()).To(Equal(x.M0.Axes()))
		Expect(z.M1.Axes()).To(Equal(x.M1.Axes()))
		Expect(z.NormInf()).To(BeZero())
		Expect(z.M0).NotTo(BeIdenticalTo(x.M0))
	})
})

var _ = Describe("heterogeneous composites", func() {
	It("mixes value members, grids and nested tuples", func() {
		inner := newPair(2, 3)
		x := state.NewTuple3[scalar, grid, *pair, float64](scalar(-2), filled(func(idx gf.Idx) float64 { return float64(idx[0]) }, gf.Range(-1, 2)), inner)
		y := x.Clone().MulScalar(2)

		sum := x.Add(y)
		Expect(sum.M0).To(Equal(scalar(-6)))
		Expect(sum.M1.Data()).To(Equal([]float64{-3, 0, 3}))
		expectCells(sum.M2.M1, inner.M1.MulScalar(3), 1e-12)

		x.AddAssign(y)
		Expect(x.M0).To(Equal(scalar(-6)))
		Expect(x.M2).To(BeIdenticalTo(inner))

		Expect(x.Abs().M0).To(Equal(scalar(6)))
		Expect(x.NormInf()).To(Equal(math.Max(6, inner.NormInf())))
	})

	It("builds four-member composites", func() {
		mk := func(v float64) grid { return filled(func(gf.Idx) float64 { return v }, gf.Fermionic(1)) }
		x := state.NewTuple4[grid, grid, grid, grid, float64](mk(1), mk(-2), mk(3), mk(-4))
		Expect(x.Len()).To(Equal(4))
		Expect(x.NormInf()).To(Equal(4.0))

		d := x.Div(x)
		Expect(d.NormInf()).To(Equal(1.0))
		Expect(x.SubFrom(1).M3.Data()).To(Equal([]float64{5, 5}))
	})
})

var _ = Describe("Real", func() {
	It("converts into every scalar type", func() {
		Expect(state.Real[float64](1.5)).To(Equal(1.5))
		Expect(state.Real[float32](1.5)).To(Equal(float32(1.5)))
		Expect(state.Real[complex128](1.5)).To(Equal(complex(1.5, 0)))
		Expect(state.Real[complex64](-2)).To(Equal(complex64(complex(-2, 0))))
		Expect(state.Real[int](2.9)).To(Equal(2))
		Expect(state.Real[int64](-2.9)).To(Equal(int64(-2)))
	})
})
