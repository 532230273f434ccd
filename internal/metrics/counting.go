package metrics

import (
	"sync/atomic"

	"github.com/san-kum/frgflow/internal/integrators"
)

// CountingSystem counts right-hand side evaluations. It is safe to share
// between concurrent runs and doubles as a metric.
type CountingSystem[T any] struct {
	sys integrators.System[T]
	n   atomic.Int64
}

func NewCountingSystem[T any](sys integrators.System[T]) *CountingSystem[T] {
	return &CountingSystem[T]{sys: sys}
}

func (c *CountingSystem[T]) Derive(x, dxdt T, t float64) {
	c.n.Add(1)
	c.sys.Derive(x, dxdt, t)
}

func (c *CountingSystem[T]) Count() int64 { return c.n.Load() }

func (c *CountingSystem[T]) Name() string           { return "evaluations" }
func (c *CountingSystem[T]) Observe(x T, t float64) {}
func (c *CountingSystem[T]) Value() float64         { return float64(c.n.Load()) }
func (c *CountingSystem[T]) Reset()                 { c.n.Store(0) }
