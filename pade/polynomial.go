package pade

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/hyperdual"
)

// Polynomial is a real polynomial in the monomial basis.
// Coeffs[i] is the coefficient of x^i (constant term first).
type Polynomial struct {
	Coeffs []float64
}

// NewPolynomial copies coeffs into a new polynomial
func NewPolynomial(coeffs []float64) Polynomial {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Polynomial{Coeffs: c}
}

// Degree returns the formal degree (len(Coeffs)-1), or -1 for the empty polynomial.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Evaluate computes p(x) using Horner's method
func (p Polynomial) Evaluate(x float64) float64 {
	n := len(p.Coeffs) - 1
	if n < 0 {
		return 0
	}

	result := p.Coeffs[n]
	for i := n - 1; i >= 0; i-- {
		result = result*x + p.Coeffs[i]
	}
	return result
}

// EvaluateAll evaluates p at every point of xs.
func (p Polynomial) EvaluateAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Evaluate(x)
	}
	return ys
}

// Dual evaluates p over dual numbers; the Emag part of the result carries p'(x).
func (p Polynomial) Dual(x dual.Number) dual.Number {
	n := len(p.Coeffs) - 1
	if n < 0 {
		return dual.Number{}
	}

	result := dual.Number{Real: p.Coeffs[n]}
	for i := n - 1; i >= 0; i-- {
		result = dual.Add(dual.Mul(result, x), dual.Number{Real: p.Coeffs[i]})
	}
	return result
}

// Hyperdual evaluates p over hyperdual numbers.
// With x = {Real: x0, E1mag: 1, E2mag: 1}, E1E2mag of the result is p''(x0).
func (p Polynomial) Hyperdual(x hyperdual.Number) hyperdual.Number {
	n := len(p.Coeffs) - 1
	if n < 0 {
		return hyperdual.Number{}
	}

	result := hyperdual.Number{Real: p.Coeffs[n]}
	for i := n - 1; i >= 0; i-- {
		result = hyperdual.Add(hyperdual.Mul(result, x), hyperdual.Number{Real: p.Coeffs[i]})
	}
	return result
}

// String renders p highest degree first with 4 significant digits,
// skipping zero terms: "0.02381 x^3 + 1 x".
func (p Polynomial) String() string {
	var b strings.Builder

	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		c := p.Coeffs[i]
		if c == 0 {
			continue
		}

		if b.Len() == 0 {
			if c < 0 {
				b.WriteString("-")
			}
		} else if c < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}

		abs := c
		if abs < 0 {
			abs = -abs
		}
		b.WriteString(fmt.Sprintf("%.4g", abs))

		switch i {
		case 0:
		case 1:
			b.WriteString(" x")
		default:
			b.WriteString(fmt.Sprintf(" x^%d", i))
		}
	}

	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
