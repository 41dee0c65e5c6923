package pade

import (
	"fmt"
	"math"
)

// OneMinusExp is the exact target function 1 - e^{-x}.
func OneMinusExp(x float64) float64 {
	return -math.Expm1(-x)
}

// OneMinusExpCoefficients returns the first n Taylor coefficients of
// 1 - e^{-x} around 0: 0, 1, -1/2, 1/6, -1/24, ...
func OneMinusExpCoefficients(n int) []float64 {
	coeffs := make([]float64, n)
	fact := 1.0
	for k := 1; k < n; k++ {
		fact *= float64(k)
		if k%2 == 1 {
			coeffs[k] = 1 / fact
		} else {
			coeffs[k] = -1 / fact
		}
	}
	return coeffs
}

// ExponentialDist is the probability that an exponentially distributed
// failure with the given rate has occurred by time t.
func ExponentialDist(rate, t float64) float64 {
	rt := rate * t
	if rt < 1e-5 {
		return rt - rt*rt/2 + rt*rt*rt/6 - rt*rt*rt*rt/24
	}
	return 1 - math.Exp(-rt)
}

// TaylorApprox is the truncated power series itself.
type TaylorApprox struct {
	poly Polynomial
}

// NewTaylorApprox wraps the coefficients an as a polynomial approximation.
func NewTaylorApprox(an []float64) *TaylorApprox {
	return &TaylorApprox{poly: NewPolynomial(an)}
}

func (t *TaylorApprox) Name() string {
	return fmt.Sprintf("Taylor-%d", t.poly.Degree())
}

func (t *TaylorApprox) Evaluate(x float64) float64 {
	return t.poly.Evaluate(x)
}
