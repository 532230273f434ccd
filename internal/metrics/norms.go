package metrics

import "math"

// Normed is any state with an infinity norm.
type Normed interface {
	NormInf() float64
}

// MaxNorm tracks the largest norm seen. NaN sticks once observed.
type MaxNorm[T Normed] struct {
	max float64
}

func NewMaxNorm[T Normed]() *MaxNorm[T] { return &MaxNorm[T]{} }

func (m *MaxNorm[T]) Name() string { return "max_norm" }

func (m *MaxNorm[T]) Observe(x T, t float64) {
	n := x.NormInf()
	switch {
	case math.IsNaN(m.max):
	case math.IsNaN(n) || n > m.max:
		m.max = n
	}
}

func (m *MaxNorm[T]) Value() float64 { return m.max }
func (m *MaxNorm[T]) Reset()         { m.max = 0 }

type FinalNorm[T Normed] struct {
	last float64
}

func NewFinalNorm[T Normed]() *FinalNorm[T] { return &FinalNorm[T]{} }

func (f *FinalNorm[T]) Name() string           { return "final_norm" }
func (f *FinalNorm[T]) Observe(x T, t float64) { f.last = x.NormInf() }
func (f *FinalNorm[T]) Value() float64         { return f.last }
func (f *FinalNorm[T]) Reset()                 { f.last = 0 }

// NormGrowth is the ratio of the last observed norm to the first.
type NormGrowth[T Normed] struct {
	first, last float64
	samples     int
}

func NewNormGrowth[T Normed]() *NormGrowth[T] { return &NormGrowth[T]{} }

func (g *NormGrowth[T]) Name() string { return "norm_growth" }

func (g *NormGrowth[T]) Observe(x T, t float64) {
	n := x.NormInf()
	if g.samples == 0 {
		g.first = n
	}
	g.last = n
	g.samples++
}

func (g *NormGrowth[T]) Value() float64 {
	if g.samples == 0 {
		return 1.0
	}
	if g.first == 0 {
		if g.last == 0 {
			return 1.0
		}
		return math.Inf(1)
	}
	return g.last / g.first
}

func (g *NormGrowth[T]) Reset() {
	g.first, g.last = 0, 0
	g.samples = 0
}

// Stability is the fraction of observed states whose norm stayed finite
// and at or below the threshold.
type Stability[T Normed] struct {
	threshold  float64
	violations int
	samples    int
}

func NewStability[T Normed](threshold float64) *Stability[T] {
	return &Stability[T]{threshold: threshold}
}

func (s *Stability[T]) Name() string { return "stability" }

func (s *Stability[T]) Observe(x T, t float64) {
	s.samples++
	n := x.NormInf()
	if math.IsNaN(n) || n > s.threshold {
		s.violations++
	}
}

func (s *Stability[T]) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability[T]) Reset() {
	s.violations = 0
	s.samples = 0
}
