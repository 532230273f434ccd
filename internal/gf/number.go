package gf

import (
	"math"
	"math/cmplx"
)

// Number is the set of cell types a Grid can hold.
type Number interface {
	int | int32 | int64 | float32 | float64 | complex64 | complex128
}

// absInto writes the magnitude of every src cell into dst. Complex magnitudes
// are stored as complex(|z|, 0) so the result keeps the grid's value type.
func absInto[V Number](dst, src []V) {
	switch d := any(dst).(type) {
	case []float64:
		for i, v := range any(src).([]float64) {
			d[i] = math.Abs(v)
		}
	case []float32:
		for i, v := range any(src).([]float32) {
			d[i] = float32(math.Abs(float64(v)))
		}
	case []complex128:
		for i, z := range any(src).([]complex128) {
			d[i] = complex(cmplx.Abs(z), 0)
		}
	case []complex64:
		for i, z := range any(src).([]complex64) {
			d[i] = complex(float32(cmplx.Abs(complex128(z))), 0)
		}
	case []int:
		for i, v := range any(src).([]int) {
			d[i] = intAbs(v)
		}
	case []int32:
		for i, v := range any(src).([]int32) {
			d[i] = intAbs(v)
		}
	case []int64:
		for i, v := range any(src).([]int64) {
			d[i] = intAbs(v)
		}
	}
}

// maxMagnitude returns the largest cell magnitude in src, 0 for an empty slice.
// A NaN cell makes the result NaN.
func maxMagnitude[V Number](src []V) float64 {
	m := 0.0
	switch s := any(src).(type) {
	case []float64:
		for _, v := range s {
			m = maxNaN(m, math.Abs(v))
		}
	case []float32:
		for _, v := range s {
			m = maxNaN(m, math.Abs(float64(v)))
		}
	case []complex128:
		for _, z := range s {
			m = maxNaN(m, cmplx.Abs(z))
		}
	case []complex64:
		for _, z := range s {
			m = maxNaN(m, cmplx.Abs(complex128(z)))
		}
	case []int:
		for _, v := range s {
			m = maxNaN(m, float64(intAbs(v)))
		}
	case []int32:
		for _, v := range s {
			m = maxNaN(m, float64(intAbs(v)))
		}
	case []int64:
		for _, v := range s {
			m = maxNaN(m, float64(intAbs(v)))
		}
	}
	return m
}

func intAbs[I int | int32 | int64](v I) I {
	if v < 0 {
		return -v
	}
	return v
}

func maxNaN(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN()
	}
	if b > a {
		return b
	}
	return a
}
