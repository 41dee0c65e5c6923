package pade

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/hyperdual"
)

// Approximation represents a real function approximation method
type Approximation interface {
	Name() string
	Evaluate(x float64) float64
}

// Func adapts a plain function to Approximation
type Func struct {
	Label string
	F     func(float64) float64
}

func (f Func) Name() string               { return f.Label }
func (f Func) Evaluate(x float64) float64 { return f.F(x) }

// BenchmarkResult stores accuracy information for one method
type BenchmarkResult struct {
	Method     string
	Accuracy   float64 // Mean absolute error
	MaxError   float64
	MaxErrorAt float64
	TestPoints int
}

// Benchmark measures every method against the reference f at the given points.
// Each method is evaluated once per point; mean and max come from the same errors.
func Benchmark(methods []Approximation, f func(float64) float64, points []float64) []BenchmarkResult {
	results := make([]BenchmarkResult, 0, len(methods))

	for _, method := range methods {
		errs := absErrors(f, method, points)
		maxError, maxAt := maxOf(errs, points)

		accuracy := 0.0
		if len(errs) > 0 {
			accuracy = floats.Sum(errs) / float64(len(errs))
		}

		results = append(results, BenchmarkResult{
			Method:     method.Name(),
			Accuracy:   accuracy,
			MaxError:   maxError,
			MaxErrorAt: maxAt,
			TestPoints: len(points),
		})
	}

	return results
}

// MaxError returns the largest |f(x) - a(x)| over xs and the point where it occurs.
// NaN errors are reported immediately since they cannot be ordered.
func MaxError(f func(float64) float64, a Approximation, xs []float64) (float64, float64) {
	return maxOf(absErrors(f, a, xs), xs)
}

func absErrors(f func(float64) float64, a Approximation, xs []float64) []float64 {
	errs := make([]float64, len(xs))
	for i, x := range xs {
		errs[i] = math.Abs(f(x) - a.Evaluate(x))
	}
	return errs
}

func maxOf(errs, xs []float64) (float64, float64) {
	maxError := 0.0
	maxAt := math.NaN()

	for i, err := range errs {
		if math.IsNaN(err) {
			return err, xs[i]
		}
		if err > maxError || math.IsNaN(maxAt) {
			maxError = err
			maxAt = xs[i]
		}
	}

	return maxError, maxAt
}

// Derivatives returns r(x), r'(x) and r''(x) computed exactly with
// dual and hyperdual arithmetic.
func Derivatives(r *Rational, x float64) (value, first, second float64) {
	d := dual.Mul(r.Num.Dual(dual.Number{Real: x, Emag: 1}),
		dual.Inv(r.Den.Dual(dual.Number{Real: x, Emag: 1})))

	hx := hyperdual.Number{Real: x, E1mag: 1, E2mag: 1}
	h := hyperdual.Mul(r.Num.Hyperdual(hx), hyperdual.Inv(r.Den.Hyperdual(hx)))

	return d.Real, d.Emag, h.E1E2mag
}
