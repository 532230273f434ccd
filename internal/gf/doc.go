// Package gf provides dense N-dimensional grids with signed per-axis index
// bases.
//
// A [Grid] stores its cells contiguously in row-major order. Each axis is
// described by an [Axis] whose coordinates run over [Base, Base+Len), so a
// fermionic Matsubara axis [-n, n) or a bosonic one [-n, n+1) puts frequency 0
// in the middle of storage:
//
//	g := gf.MustNew[complex128](gf.Bosonic(n), gf.Fermionic(n))
//	g.Fill(func(idx gf.Idx) complex128 { return complex(float64(idx[0]), 0) })
//	v := g.At(gf.Idx{0, -1})
//
// Grids support elementwise arithmetic, scalar arithmetic and an infinity
// norm, which makes *Grid[V] a vector type for the integrators in this module.
//
// # Preconditions
//
// Combining grids of different shape and addressing a cell outside the axis
// ranges are caller errors. The default build panics with [ErrShapeMismatch]
// or [ErrOutOfRange]; building with the gfnocheck tag removes the checks
// from the hot path entirely.
//
// # Thread Safety
//
// A Grid is not safe for concurrent mutation. Large elementwise operations
// fan out over worker goroutines internally; this is invisible to callers.
package gf
