package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var ErrNoData = errors.New("export: nothing to plot")

// Series is one named line.
type Series struct {
	Name string
	X, Y []float64
}

type Options struct {
	Title  string
	XLabel string
	YLabel string
	// LogY switches the y axis to a log scale. Non-positive points are
	// dropped.
	LogY   bool
	Width  vg.Length
	Height vg.Length
}

func DefaultOptions() Options {
	return Options{
		Title:  "flow",
		XLabel: "Λ",
		YLabel: "‖x‖∞",
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

// Plot builds a line plot with one legend entry per series.
func Plot(series []Series, opts Options) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())
	if opts.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("export: series %q has %d x and %d y values", s.Name, len(s.X), len(s.Y))
		}
		xys := make(plotter.XYs, 0, len(s.X))
		for j := range s.X {
			if opts.LogY && !(s.Y[j] > 0) {
				continue
			}
			xys = append(xys, plotter.XY{X: s.X[j], Y: s.Y[j]})
		}
		if len(xys) == 0 {
			return nil, fmt.Errorf("%w: series %q", ErrNoData, s.Name)
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("export: series %q: %w", s.Name, err)
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}
	p.Legend.Top = true
	return p, nil
}

// Write renders the plot in format ("png", "svg", "pdf", ...) to w.
func Write(w io.Writer, format string, series []Series, opts Options) error {
	p, err := Plot(series, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders the plot to path, choosing the format from its extension.
func Save(path string, series []Series, opts Options) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return fmt.Errorf("export: %s has no file extension", path)
	}
	p, err := Plot(series, opts)
	if err != nil {
		return err
	}
	return p.Save(opts.Width, opts.Height, path)
}
