// Package plot draws the exact function and its approximant on one figure.
package plot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrLengthMismatch is returned when the curves and the domain differ in length.
var ErrLengthMismatch = errors.New("plot: curve length does not match domain")

// Comparison holds the sampled domain and the two curves drawn over it.
type Comparison struct {
	X      []float64
	Exact  []float64
	Approx []float64
}

// Options sets the figure size in inches and its resolution.
type Options struct {
	Width  float64
	Height float64
	DPI    int
}

// Figure is a rendered comparison plot.
type Figure struct {
	Image image.Image
	PNG   []byte
	// Dropped counts non-finite samples left out of the drawn lines.
	Dropped int
}

// New composes the comparison: exact solid, approximant dashed.
// The plotting library cannot draw NaN or ±Inf, so such samples are
// skipped; the second return value is how many were skipped.
func New(c Comparison) (*plot.Plot, int, error) {
	if len(c.Exact) != len(c.X) || len(c.Approx) != len(c.X) {
		return nil, 0, ErrLengthMismatch
	}

	p := plot.New()

	exact, droppedExact := finiteXYs(c.X, c.Exact)
	approx, droppedApprox := finiteXYs(c.X, c.Approx)

	exactLine, err := plotter.NewLine(exact)
	if err != nil {
		return nil, 0, fmt.Errorf("exact line: %w", err)
	}
	exactLine.LineStyle.Color = plotutil.Color(0)

	approxLine, err := plotter.NewLine(approx)
	if err != nil {
		return nil, 0, fmt.Errorf("approximant line: %w", err)
	}
	approxLine.LineStyle.Color = plotutil.Color(1)
	approxLine.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	p.Add(exactLine, approxLine)

	return p, droppedExact + droppedApprox, nil
}

// Render composes the comparison and rasterizes it.
func Render(c Comparison, opts Options) (*Figure, error) {
	p, dropped, err := New(c)
	if err != nil {
		return nil, err
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch),
		vgimg.UseDPI(opts.DPI),
	)
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return &Figure{
		Image:   canvas.Image(),
		PNG:     buf.Bytes(),
		Dropped: dropped,
	}, nil
}

// Save writes the PNG encoding to path, creating parent directories.
func (f *Figure) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create plot directory: %w", err)
		}
	}
	if err := os.WriteFile(path, f.PNG, 0o644); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	return nil
}

func finiteXYs(xs, ys []float64) (plotter.XYs, int) {
	pts := make(plotter.XYs, 0, len(xs))
	dropped := 0
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			dropped++
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts, dropped
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
