package metrics

import (
	"math"
	"sync"
	"testing"

	"github.com/san-kum/frgflow/internal/gf"
	"github.com/san-kum/frgflow/internal/integrators"
	"github.com/san-kum/frgflow/internal/sim"
)

type norm float64

func (n norm) NormInf() float64 { return float64(n) }

var (
	_ sim.Metric[norm]                      = (*MaxNorm[norm])(nil)
	_ sim.Metric[norm]                      = (*FinalNorm[norm])(nil)
	_ sim.Metric[norm]                      = (*NormGrowth[norm])(nil)
	_ sim.Metric[norm]                      = (*Stability[norm])(nil)
	_ sim.Metric[norm]                      = (*Probe[norm])(nil)
	_ sim.Metric[*gf.Grid[float64]]         = (*CountingSystem[*gf.Grid[float64]])(nil)
	_ integrators.System[*gf.Grid[float64]] = (*CountingSystem[*gf.Grid[float64]])(nil)
)

func observe[T any](m sim.Metric[T], xs ...T) float64 {
	m.Reset()
	for i, x := range xs {
		m.Observe(x, float64(i))
	}
	return m.Value()
}

func TestNormMetrics(t *testing.T) {
	nan := norm(math.NaN())
	tests := []struct {
		name   string
		metric sim.Metric[norm]
		in     []norm
		want   float64
	}{
		{"max", NewMaxNorm[norm](), []norm{1, 3, 2}, 3},
		{"max empty", NewMaxNorm[norm](), nil, 0},
		{"final", NewFinalNorm[norm](), []norm{1, 3, 2}, 2},
		{"growth", NewNormGrowth[norm](), []norm{2, 3, 5}, 2.5},
		{"growth empty", NewNormGrowth[norm](), nil, 1},
		{"growth from zero", NewNormGrowth[norm](), []norm{0, 1}, math.Inf(1)},
		{"stability", NewStability[norm](2), []norm{1, 3, 2, nan}, 0.5},
		{"stability empty", NewStability[norm](2), nil, 1},
		{"probe", NewProbe("twice", func(n norm) float64 { return 2 * float64(n) }), []norm{1, 4}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := observe(tt.metric, tt.in...); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxNormKeepsNaN(t *testing.T) {
	m := NewMaxNorm[norm]()
	if got := observe[norm](m, 1, norm(math.NaN()), 5); !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
	m.Reset()
	if m.Value() != 0 {
		t.Errorf("reset did not clear max: %v", m.Value())
	}
}

func TestCountingSystemConcurrent(t *testing.T) {
	type grid = *gf.Grid[float64]
	c := NewCountingSystem[grid](integrators.Func[grid](func(x, dxdt grid, _ float64) { dxdt.Assign(x) }))

	x := gf.MustNew[float64](gf.Range(0, 8))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dxdt := x.Zero()
			for j := 0; j < 100; j++ {
				c.Derive(x, dxdt, 0)
			}
		}()
	}
	wg.Wait()

	if c.Count() != 800 {
		t.Errorf("expected 800 evaluations, got %d", c.Count())
	}
	if c.Value() != 800 {
		t.Errorf("Value() = %v, want 800", c.Value())
	}
	c.Reset()
	if c.Count() != 0 {
		t.Errorf("reset did not clear count: %d", c.Count())
	}
}
