package models

import (
	"log/slog"

	"github.com/san-kum/frgflow/internal/gf"
)

func trace(l *slog.Logger, name string, x *State, lam float64) {
	if l == nil {
		return
	}
	g := Gam0(x)
	l.Debug("evaluation", "model", name, "scale", lam, "gam0_re", real(g), "gam0_im", imag(g))
}

// Constant sets every derivative cell to one, so each cell grows linearly
// with the scale.
type Constant struct {
	Logger *slog.Logger
}

func (c Constant) Derive(x, dxdt *State, lam float64) {
	trace(c.Logger, "constant", x, lam)
	Sig(dxdt).Fill(func(gf.Idx) complex128 { return 1 })
	Gam(dxdt).Fill(func(gf.Idx) complex128 { return 1 })
}

// Decay is x' = -Rate*x on every cell.
type Decay struct {
	Rate   float64
	Logger *slog.Logger
}

func (d Decay) Derive(x, dxdt *State, lam float64) {
	trace(d.Logger, "decay", x, lam)
	dxdt.Assign(x).MulScalarAssign(complex(-d.Rate, 0))
}

// Ladder is a one-loop toy flow. The vertex obeys Gam' = -Gam*Gam cell by
// cell and the self-energy is driven by the vertex averaged over the bosonic
// frequency: Sig'(w) = -mean_W Gam(W, w).
type Ladder struct {
	Logger *slog.Logger
}

func (l Ladder) Derive(x, dxdt *State, lam float64) {
	trace(l.Logger, "ladder", x, lam)

	gam := Gam(x)
	Gam(dxdt).Assign(gam).MulAssign(gam).MulScalarAssign(-1)

	bos := gam.Axes()[BosW]
	key := make(gf.Idx, 2)
	Sig(dxdt).Fill(func(idx gf.Idx) complex128 {
		gf.Set(key, FermW, gf.Get(idx, W))
		var sum complex128
		for b := bos.Base; b < bos.End(); b++ {
			gf.Set(key, BosW, b)
			sum += gam.At(key)
		}
		return -sum / complex(float64(bos.Len), 0)
	})
}
