package metrics

// Probe reports fn of the last observed state.
type Probe[T any] struct {
	name string
	fn   func(T) float64
	last float64
}

func NewProbe[T any](name string, fn func(T) float64) *Probe[T] {
	return &Probe[T]{name: name, fn: fn}
}

func (p *Probe[T]) Name() string           { return p.name }
func (p *Probe[T]) Observe(x T, t float64) { p.last = p.fn(x) }
func (p *Probe[T]) Value() float64         { return p.last }
func (p *Probe[T]) Reset()                 { p.last = 0 }
