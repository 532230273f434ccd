package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrTooFewPoints = errors.New("analysis: not enough usable points")

type StepStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Total  float64
}

// Steps summarises accepted step sizes. The zero value is returned for no
// steps.
func Steps(dts []float64) StepStats {
	if len(dts) == 0 {
		return StepStats{}
	}
	s := StepStats{
		Count: len(dts),
		Min:   floats.Min(dts),
		Max:   floats.Max(dts),
		Total: floats.Sum(dts),
	}
	if len(dts) == 1 {
		s.Mean = dts[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(dts, nil)
	return s
}

// ObservedOrder fits log(err) = a + p*log(dt) by least squares and returns p.
// Pairs with a non-positive step or error are skipped.
func ObservedOrder(dts, errs []float64) (float64, error) {
	if len(dts) != len(errs) {
		return 0, fmt.Errorf("analysis: %d step sizes but %d errors", len(dts), len(errs))
	}
	var xs, ys []float64
	for i := range dts {
		if dts[i] > 0 && errs[i] > 0 && !math.IsInf(errs[i], 0) {
			xs = append(xs, math.Log(dts[i]))
			ys = append(ys, math.Log(errs[i]))
		}
	}
	if len(xs) < 2 || floats.Min(xs) == floats.Max(xs) {
		return 0, fmt.Errorf("%w: %d", ErrTooFewPoints, len(xs))
	}
	_, p := stat.LinearRegression(xs, ys, nil, false)
	return p, nil
}
