// Package app runs the approximation-and-plot sequence: fit, print, sample,
// evaluate, plot, display.
package app

import (
	"context"
	"fmt"
	"image"
	"io"

	"github.com/rs/zerolog"

	"github.com/z3rotig4r/pade_approx/internal/config"
	"github.com/z3rotig4r/pade_approx/internal/plot"
	"github.com/z3rotig4r/pade_approx/internal/viewer"
	"github.com/z3rotig4r/pade_approx/pade"
)

// Coefficients are the Taylor coefficients of 1 - e^{-x} around 0, constant term first.
var Coefficients = []float64{0, 1, -1.0 / 2, 1.0 / 6, -1.0 / 24, 1.0 / 120, -1.0 / 720, 1.0 / 5040}

const (
	// DenominatorDegree is the requested denominator degree; the numerator
	// takes the remaining len(Coefficients)-1-4 = 3.
	DenominatorDegree = 4

	DomainStart = 0.0
	DomainStop  = 1000.0

	windowTitle = "1 - exp(-x) vs Padé approximant"
)

// ShowFunc opens img in a window and blocks until it is closed.
type ShowFunc func(title string, img image.Image) error

// App encapsulates one run of the driver.
type App struct {
	cfg    *config.Config
	log    zerolog.Logger
	stdout io.Writer
	show   ShowFunc
}

// New creates an App. show may be nil when the window display mode is unused.
func New(cfg *config.Config, log zerolog.Logger, stdout io.Writer, show ShowFunc) *App {
	return &App{cfg: cfg, log: log, stdout: stdout, show: show}
}

// Run performs the whole sequence and returns once the display is dismissed.
func (a *App) Run(ctx context.Context) error {
	r, err := a.Approximate()
	if err != nil {
		return err
	}

	fig, err := a.RenderComparison(r)
	if err != nil {
		return err
	}

	return a.Display(ctx, fig, r)
}

// Approximate fits the approximant and prints numerator and denominator.
func (a *App) Approximate() (*pade.Rational, error) {
	r, err := pade.Approximate(Coefficients, DenominatorDegree)
	if err != nil {
		return nil, fmt.Errorf("approximate: %w", err)
	}

	a.log.Debug().
		Str("method", r.Name()).
		Floats64("numerator", r.Num.Coeffs).
		Floats64("denominator", r.Den.Coeffs).
		Msg("approximant computed")

	fmt.Fprintln(a.stdout, r.Num.String())
	fmt.Fprintln(a.stdout, r.Den.String())

	return r, nil
}

// RenderComparison samples the domain, evaluates the exact function and the
// approximant there and draws both. The PNG is written only when an output
// path is configured.
func (a *App) RenderComparison(r *pade.Rational) (*plot.Figure, error) {
	xs := pade.Linspace(DomainStart, DomainStop, pade.DefaultSamples)

	exact := make([]float64, len(xs))
	for i, x := range xs {
		exact[i] = pade.OneMinusExp(x)
	}
	approx := r.EvaluateAll(xs)

	maxErr, maxAt := pade.MaxError(pade.OneMinusExp, r, xs)
	a.log.Info().
		Int("samples", len(xs)).
		Float64("max_error", maxErr).
		Float64("max_error_at", maxAt).
		Msg("curves evaluated")

	fig, err := plot.Render(plot.Comparison{X: xs, Exact: exact, Approx: approx}, plot.Options{
		Width:  a.cfg.Plot.Width,
		Height: a.cfg.Plot.Height,
		DPI:    a.cfg.Plot.DPI,
	})
	if err != nil {
		return nil, fmt.Errorf("render plot: %w", err)
	}
	if fig.Dropped > 0 {
		a.log.Warn().Int("points", fig.Dropped).Msg("non-finite samples left out of the plot")
	}

	if a.cfg.Plot.Output != "" {
		if err := fig.Save(a.cfg.Plot.Output); err != nil {
			return nil, err
		}
		a.log.Info().Str("path", a.cfg.Plot.Output).Msg("plot written")
	}

	return fig, nil
}

// Display shows the figure according to the configured mode and blocks
// until it is dismissed.
func (a *App) Display(ctx context.Context, fig *plot.Figure, r *pade.Rational) error {
	switch a.cfg.Display.Mode {
	case "none":
		return nil
	case "http":
		v := viewer.New(fig.PNG, viewer.Approximant{
			Name:        r.Name(),
			Numerator:   r.Num.Coeffs,
			Denominator: r.Den.Coeffs,
			NumText:     r.Num.String(),
			DenText:     r.Den.String(),
		}, a.log)
		if err := v.Serve(ctx, a.cfg.Display.Addr); err != nil {
			return fmt.Errorf("plot viewer: %w", err)
		}
		return nil
	case "window":
		if a.show == nil {
			return fmt.Errorf("display mode %q is not available", a.cfg.Display.Mode)
		}
		if err := a.show(windowTitle, fig.Image); err != nil {
			return fmt.Errorf("plot window: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown display mode %q", a.cfg.Display.Mode)
	}
}
