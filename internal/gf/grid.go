package gf

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a dense N-dimensional array of V addressed by signed multi-indices.
// The zero value is not usable; construct grids with New or MustNew.
type Grid[V Number] struct {
	axes    []Axis
	strides []int
	data    []V
}

// New allocates a zeroed grid over the given axes. Every axis must have a
// positive length.
func New[V Number](axes ...Axis) (*Grid[V], error) {
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}
	n := 1
	for k, a := range axes {
		if a.Len <= 0 {
			return nil, fmt.Errorf("gf: axis %d %v has length %d: %w", k, a, a.Len, ErrBadAxis)
		}
		n *= a.Len
	}

	g := &Grid[V]{
		axes:    make([]Axis, len(axes)),
		strides: make([]int, len(axes)),
		data:    make([]V, n),
	}
	copy(g.axes, axes)

	stride := 1
	for k := len(axes) - 1; k >= 0; k-- {
		g.strides[k] = stride
		stride *= axes[k].Len
	}
	return g, nil
}

// MustNew is like New but panics on invalid axes.
func MustNew[V Number](axes ...Axis) *Grid[V] {
	g, err := New[V](axes...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid[V]) Rank() int { return len(g.axes) }

// Len returns the number of cells.
func (g *Grid[V]) Len() int { return len(g.data) }

func (g *Grid[V]) Axes() []Axis {
	a := make([]Axis, len(g.axes))
	copy(a, g.axes)
	return a
}

func (g *Grid[V]) Strides() []int {
	s := make([]int, len(g.strides))
	copy(s, g.strides)
	return s
}

// Data exposes the backing storage in linear-offset order. Writes through
// the returned slice modify the grid.
func (g *Grid[V]) Data() []V { return g.data }

// SameShape reports whether o has exactly the same axes as g.
func (g *Grid[V]) SameShape(o *Grid[V]) bool {
	if len(g.axes) != len(o.axes) {
		return false
	}
	for k := range g.axes {
		if g.axes[k] != o.axes[k] {
			return false
		}
	}
	return true
}

// Offset maps a multi-index to its linear storage offset. idx must lie
// inside the grid.
func (g *Grid[V]) Offset(idx Idx) int {
	if checked {
		g.mustContain(idx)
	}
	off := 0
	for k, s := range g.strides {
		off += s * (idx[k] - g.axes[k].Base)
	}
	return off
}

// Index maps a linear offset in [0, Len()) back to its multi-index.
func (g *Grid[V]) Index(off int) Idx {
	idx := make(Idx, len(g.axes))
	g.IndexInto(off, idx)
	return idx
}

// IndexInto decodes off into dst without allocating. dst must have Rank()
// entries.
func (g *Grid[V]) IndexInto(off int, dst Idx) {
	if checked && (off < 0 || off >= len(g.data) || len(dst) != len(g.axes)) {
		panic(fmt.Errorf("offset %d on %v: %w", off, g, ErrOutOfRange))
	}
	for k, s := range g.strides {
		q := off / s
		dst[k] = g.axes[k].Base + q
		off -= q * s
	}
}

// Indices returns every multi-index of the grid in linear-offset order.
func (g *Grid[V]) Indices() []Idx {
	out := make([]Idx, 0, len(g.data))
	for _, idx := range g.All() {
		out = append(out, idx.Clone())
	}
	return out
}

// All iterates over (offset, multi-index) pairs in linear-offset order. The
// yielded Idx is reused between iterations; Clone it to keep it.
func (g *Grid[V]) All() iter.Seq2[int, Idx] {
	return func(yield func(int, Idx) bool) {
		idx := make(Idx, len(g.axes))
		for k, a := range g.axes {
			idx[k] = a.Base
		}
		last := len(g.axes) - 1
		for off := range g.data {
			if !yield(off, idx) {
				return
			}
			for k := last; k >= 0; k-- {
				idx[k]++
				if idx[k] < g.axes[k].End() {
					break
				}
				idx[k] = g.axes[k].Base
			}
		}
	}
}

// Fill assigns fn(idx) to every cell. fn must not keep idx past the call.
func (g *Grid[V]) Fill(fn func(Idx) V) *Grid[V] {
	for off, idx := range g.All() {
		g.data[off] = fn(idx)
	}
	return g
}

func (g *Grid[V]) At(idx Idx) V { return g.data[g.Offset(idx)] }

func (g *Grid[V]) Set(idx Idx, v V) { g.data[g.Offset(idx)] = v }

// Ref returns a pointer to the cell at idx for in-place updates.
func (g *Grid[V]) Ref(idx Idx) *V { return &g.data[g.Offset(idx)] }

func (g *Grid[V]) AtOffset(off int) V { return g.data[off] }

func (g *Grid[V]) SetOffset(off int, v V) { g.data[off] = v }

// Clone returns a deep copy with its own storage.
func (g *Grid[V]) Clone() *Grid[V] {
	c := &Grid[V]{
		axes:    g.axes,
		strides: g.strides,
		data:    make([]V, len(g.data)),
	}
	copy(c.data, g.data)
	return c
}

// Zero returns a grid of the same shape with every cell zero.
func (g *Grid[V]) Zero() *Grid[V] {
	return &Grid[V]{
		axes:    g.axes,
		strides: g.strides,
		data:    make([]V, len(g.data)),
	}
}

// Assign copies the cells of src into g.
func (g *Grid[V]) Assign(src *Grid[V]) *Grid[V] {
	g.mustMatch(src)
	copy(g.data, src.data)
	return g
}

func (g *Grid[V]) String() string {
	parts := make([]string, len(g.axes))
	for k, a := range g.axes {
		parts[k] = a.String()
	}
	return fmt.Sprintf("Grid[%s]", strings.Join(parts, "x"))
}

func (g *Grid[V]) mustMatch(o *Grid[V]) {
	if checked && !g.SameShape(o) {
		panic(fmt.Errorf("%v vs %v: %w", g, o, ErrShapeMismatch))
	}
}

func (g *Grid[V]) mustContain(idx Idx) {
	if len(idx) != len(g.axes) {
		panic(fmt.Errorf("index %v has rank %d, grid %v: %w", idx, len(idx), g, ErrOutOfRange))
	}
	for k, a := range g.axes {
		if !a.Contains(idx[k]) {
			panic(fmt.Errorf("index %v axis %d outside %v: %w", idx, k, a, ErrOutOfRange))
		}
	}
}
