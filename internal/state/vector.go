package state

import "math"

// Scalar is the set of types a Vector can be scaled or shifted by.
type Scalar interface {
	int | int32 | int64 | float32 | float64 | complex64 | complex128
}

// Vector is the arithmetic contract shared by grids and composites. Binary
// forms return a new value, Assign forms mutate the receiver and return it.
// Both operands of a binary operator must have the same shape.
type Vector[T any, S Scalar] interface {
	Clone() T
	Zero() T
	Assign(src T) T

	Add(o T) T
	Sub(o T) T
	Mul(o T) T
	Div(o T) T
	Neg() T
	Abs() T

	AddAssign(o T) T
	SubAssign(o T) T
	MulAssign(o T) T
	DivAssign(o T) T

	AddScalar(s S) T
	SubScalar(s S) T
	SubFrom(s S) T
	MulScalar(s S) T
	DivScalar(s S) T

	AddScalarAssign(s S) T
	SubScalarAssign(s S) T
	MulScalarAssign(s S) T
	DivScalarAssign(s S) T

	NormInf() float64
}

// ScalarPlus returns s + v.
func ScalarPlus[T Vector[T, S], S Scalar](s S, v T) T { return v.AddScalar(s) }

// ScalarTimes returns s * v.
func ScalarTimes[T Vector[T, S], S Scalar](s S, v T) T { return v.MulScalar(s) }

// ScalarMinus returns s - v.
func ScalarMinus[T Vector[T, S], S Scalar](s S, v T) T { return v.SubFrom(s) }

// Norm is the step-error metric of v.
func Norm[T Vector[T, S], S Scalar](v T) float64 { return v.NormInf() }

// Real converts a real number, typically an integration variable or step
// size, into the scalar type S. Integer scalars truncate toward zero.
func Real[S Scalar](x float64) S {
	var s S
	switch p := any(&s).(type) {
	case *float64:
		*p = x
	case *float32:
		*p = float32(x)
	case *complex128:
		*p = complex(x, 0)
	case *complex64:
		*p = complex(float32(x), 0)
	case *int:
		*p = int(x)
	case *int32:
		*p = int32(x)
	case *int64:
		*p = int64(x)
	}
	return s
}

// maxNorm returns the largest of the member norms; NaN wins.
func maxNorm(norms ...float64) float64 {
	m := 0.0
	for _, n := range norms {
		if math.IsNaN(n) {
			return n
		}
		if n > m {
			m = n
		}
	}
	return m
}
