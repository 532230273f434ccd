package experiment

import (
	"github.com/san-kum/frgflow/internal/models"
	"github.com/san-kum/frgflow/internal/storage"
)

// Recorder is an observer that keeps one trajectory row per accepted state.
type Recorder struct {
	rows storage.Trajectory
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) OnStep(x *models.State, t float64) {
	dt := 0.0
	if n := len(r.rows); n > 0 {
		dt = t - r.rows[n-1].Time
	}
	sig, gam := models.Sig(x).NormInf(), models.Gam(x).NormInf()
	g0 := models.Gam0(x)
	r.rows = append(r.rows, storage.Row{
		Time:    t,
		Dt:      dt,
		Norm:    max(sig, gam),
		SigNorm: sig,
		GamNorm: gam,
		Gam0Re:  real(g0),
		Gam0Im:  imag(g0),
	})
}

func (r *Recorder) Trajectory() storage.Trajectory { return r.rows }

func (r *Recorder) Reset() { r.rows = nil }
