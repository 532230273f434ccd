package gf

// Elementwise operators. The binary forms allocate a fresh grid; the Assign
// forms update the receiver and return it. Both operands must share a shape.

func (g *Grid[V]) AddAssign(o *Grid[V]) *Grid[V] {
	g.mustMatch(o)
	d, s := g.data, o.data
	parallelFor(len(d), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] += s[i]
		}
	})
	return g
}

func (g *Grid[V]) SubAssign(o *Grid[V]) *Grid[V] {
	g.mustMatch(o)
	d, s := g.data, o.data
	parallelFor(len(d), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] -= s[i]
		}
	})
	return g
}

func (g *Grid[V]) MulAssign(o *Grid[V]) *Grid[V] {
	g.mustMatch(o)
	d, s := g.data, o.data
	parallelFor(len(d), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] *= s[i]
		}
	})
	return g
}

func (g *Grid[V]) DivAssign(o *Grid[V]) *Grid[V] {
	g.mustMatch(o)
	d, s := g.data, o.data
	parallelFor(len(d), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] /= s[i]
		}
	})
	return g
}

func (g *Grid[V]) Add(o *Grid[V]) *Grid[V] { return g.Clone().AddAssign(o) }
func (g *Grid[V]) Sub(o *Grid[V]) *Grid[V] { return g.Clone().SubAssign(o) }
func (g *Grid[V]) Mul(o *Grid[V]) *Grid[V] { return g.Clone().MulAssign(o) }
func (g *Grid[V]) Div(o *Grid[V]) *Grid[V] { return g.Clone().DivAssign(o) }

// Neg returns -g.
func (g *Grid[V]) Neg() *Grid[V] {
	r := g.Zero()
	d, s := r.data, g.data
	parallelFor(len(d), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] = -s[i]
		}
	})
	return r
}

// Abs returns a grid holding the magnitude of every cell.
func (g *Grid[V]) Abs() *Grid[V] {
	r := g.Zero()
	d, s := r.data, g.data
	parallelFor(len(d), func(lo, hi int) {
		absInto(d[lo:hi], s[lo:hi])
	})
	return r
}

// NormInf returns the largest cell magnitude.
func (g *Grid[V]) NormInf() float64 {
	s := g.data
	return parallelMax(len(s), func(lo, hi int) float64 {
		return maxMagnitude(s[lo:hi])
	})
}

// Scalar operators. The scalar is combined with every cell.

func (g *Grid[V]) AddScalarAssign(s V) *Grid[V] {
	d := g.data
	parallelFor(len(d), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] += s
		}
	})
	return g
}

func (g *Grid[V]) SubScalarAssign(s V) *Grid[V] {
	d := g.data
	parallelFor(len(d), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] -= s
		}
	})
	return g
}

func (g *Grid[V]) MulScalarAssign(s V) *Grid[V] {
	d := g.data
	parallelFor(len(d), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] *= s
		}
	})
	return g
}

func (g *Grid[V]) DivScalarAssign(s V) *Grid[V] {
	d := g.data
	parallelFor(len(d), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] /= s
		}
	})
	return g
}

func (g *Grid[V]) AddScalar(s V) *Grid[V] { return g.Clone().AddScalarAssign(s) }
func (g *Grid[V]) SubScalar(s V) *Grid[V] { return g.Clone().SubScalarAssign(s) }
func (g *Grid[V]) MulScalar(s V) *Grid[V] { return g.Clone().MulScalarAssign(s) }
func (g *Grid[V]) DivScalar(s V) *Grid[V] { return g.Clone().DivScalarAssign(s) }

// SubFrom returns s - g.
func (g *Grid[V]) SubFrom(s V) *Grid[V] {
	r := g.Zero()
	d, src := r.data, g.data
	parallelFor(len(d), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			d[i] = s - src[i]
		}
	})
	return r
}
