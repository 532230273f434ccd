package models

import (
	"fmt"

	"github.com/san-kum/frgflow/internal/gf"
	"github.com/san-kum/frgflow/internal/state"
)

// Grid is a complex valued Green's function grid.
type Grid = gf.Grid[complex128]

// State is the flow state: Sig in M0 and Gam in M1.
type State = state.Tuple2[*Grid, *Grid, complex128]

// W1P names the axis of the one-particle function.
type W1P int

const W W1P = 0

// W2P names the axes of the two-particle function.
type W2P int

const (
	BosW W2P = iota
	FermW
)

// NewState allocates a zero state with n fermionic and 2n+1 bosonic
// frequencies. It is the default constructor of State; the zero State has
// nil grids and is not usable.
func NewState(n int) (*State, error) {
	sig, err := gf.New[complex128](gf.Fermionic(n))
	if err != nil {
		return nil, fmt.Errorf("models: self-energy: %w", err)
	}
	gam, err := gf.New[complex128](gf.Bosonic(n), gf.Fermionic(n))
	if err != nil {
		return nil, fmt.Errorf("models: vertex: %w", err)
	}
	return state.NewTuple2[*Grid, *Grid, complex128](sig, gam), nil
}

// Sig returns the self-energy of x. The grid is shared, not copied.
func Sig(x *State) *Grid { return x.M0 }

// Gam returns the vertex of x. The grid is shared, not copied.
func Gam(x *State) *Grid { return x.M1 }

// Init fills every cell of Sig with sig and of Gam with gam.
func Init(x *State, sig, gam complex128) {
	Sig(x).Fill(func(gf.Idx) complex128 { return sig })
	Gam(x).Fill(func(gf.Idx) complex128 { return gam })
}

// Matsubara reports the number of positive fermionic frequencies of x.
func Matsubara(x *State) int {
	return Sig(x).Axes()[W].End()
}

// Gam0 is the first stored vertex cell, tracked during a flow.
func Gam0(x *State) complex128 { return Gam(x).AtOffset(0) }
