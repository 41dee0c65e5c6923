package pade

import "fmt"

// Rational is the ratio Num(x)/Den(x) of two polynomials.
type Rational struct {
	Num Polynomial
	Den Polynomial
}

// Name identifies the approximant by its degrees, e.g. "Pade-[3/4]".
func (r *Rational) Name() string {
	return fmt.Sprintf("Pade-[%d/%d]", r.Num.Degree(), r.Den.Degree())
}

// Evaluate returns Num(x)/Den(x). A zero denominator is not guarded:
// the result is whatever IEEE-754 division yields (±Inf or NaN).
func (r *Rational) Evaluate(x float64) float64 {
	return r.Num.Evaluate(x) / r.Den.Evaluate(x)
}

// EvaluateAll evaluates r pointwise over xs.
func (r *Rational) EvaluateAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = r.Evaluate(x)
	}
	return ys
}
