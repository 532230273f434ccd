package gf

import "errors"

var (
	// ErrBadAxis indicates an axis with a non-positive length.
	ErrBadAxis = errors.New("gf: axis length must be positive")

	// ErrNoAxes indicates a grid constructed without any axis.
	ErrNoAxes = errors.New("gf: grid needs at least one axis")

	// ErrShapeMismatch indicates two grids with different axis layouts were combined.
	ErrShapeMismatch = errors.New("gf: shape mismatch")

	// ErrOutOfRange indicates a coordinate or offset outside the grid.
	ErrOutOfRange = errors.New("gf: index out of range")
)
