// Package state turns fixed collections of arithmetic values into a single
// arithmetic value.
//
// Any type T implementing [Vector] can be handed to the integrators in this
// module. *gf.Grid[V] is a Vector over scalar V, and so is every TupleN built
// from Vectors sharing the same scalar type:
//
//	x := state.NewTuple2(sig, gam)     // *Tuple2[*gf.Grid[complex128], *gf.Grid[complex128], complex128]
//	y := x.Add(x.MulScalar(0.5))       // member k of y is x.Mk + 0.5*x.Mk
//	n := y.NormInf()                   // max of the members' norms
//
// Go has no variadic type parameters, so each arity is its own type,
// generated from a single template by gentuple. All dispatch is resolved at
// compile time; a member type missing an operator does not satisfy Vector
// and the tuple fails to instantiate.
//
// Default construction means default-constructing every member. Grids have
// no usable zero value, so neither does a TupleN literal with nil grid
// members: build a default composite with NewTupleN over freshly allocated
// grids (gf.New allocates zero-filled storage), or call Zero on an existing
// composite to get one of the same shape. models.NewState is the default
// constructor of the flow state.
//
// Tuples are values in the usual sense: Clone deep-copies every member and
// two tuples never share members unless the caller builds them that way.
package state

//go:generate go run ./gentuple -o tuples_gen.go -max 4
