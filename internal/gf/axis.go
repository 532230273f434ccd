package gf

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis describes one grid dimension with coordinates in [Base, Base+Len).
type Axis struct {
	Base int
	Len  int
}

// Range returns the axis covering [lo, hi).
func Range(lo, hi int) Axis {
	return Axis{Base: lo, Len: hi - lo}
}

// Fermionic returns the symmetric fermionic frequency range [-n, n).
func Fermionic(n int) Axis {
	return Range(-n, n)
}

// Bosonic returns the symmetric bosonic frequency range [-n, n+1).
func Bosonic(n int) Axis {
	return Range(-n, n+1)
}

// End returns the first coordinate past the axis.
func (a Axis) End() int { return a.Base + a.Len }

func (a Axis) Contains(i int) bool { return i >= a.Base && i < a.End() }

func (a Axis) String() string {
	return fmt.Sprintf("[%d,%d)", a.Base, a.End())
}

// Idx is a multi-index addressing one grid cell. Entry k is the coordinate
// along axis k in that axis' native range. Idx does not reference any grid.
type Idx []int

// Get reads the coordinate of the axis named k, e.g. Get(idx, FermW).
func Get[K ~int](idx Idx, k K) int {
	return idx[int(k)]
}

// Set writes the coordinate of the axis named k.
func Set[K ~int](idx Idx, k K, v int) {
	idx[int(k)] = v
}

func (i Idx) Clone() Idx {
	c := make(Idx, len(i))
	copy(c, i)
	return c
}

func (i Idx) Equal(o Idx) bool {
	if len(i) != len(o) {
		return false
	}
	for k := range i {
		if i[k] != o[k] {
			return false
		}
	}
	return true
}

func (i Idx) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for k, v := range i {
		if k > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(')')
	return sb.String()
}
