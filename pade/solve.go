package pade

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Approximate computes the Padé approximant of the power series an
// (constant term first) with denominator degree m. The numerator degree
// is whatever the coefficients leave over: len(an)-1-m.
func Approximate(an []float64, m int) (*Rational, error) {
	n := len(an) - 1 - m
	if n < 0 {
		return nil, ErrDenominatorOrder
	}
	return ApproximateOrders(an, n, m)
}

// ApproximateOrders computes the Padé approximant with numerator degree n
// and denominator degree m. The denominator is normalized so that its
// constant term is 1. Only the first n+m+1 coefficients are used.
func ApproximateOrders(an []float64, n, m int) (*Rational, error) {
	if n < 0 {
		return nil, ErrNumeratorOrder
	}
	if m < 0 {
		return nil, ErrDenominatorOrder
	}
	size := n + m + 1
	if size > len(an) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientCoefficients, size, len(an))
	}

	// Unknowns are p_0..p_n followed by q_1..q_m. Row k matches the x^k term of
	// Q(x)*f(x) - P(x): p_k - sum_j q_j*a_{k-j} = a_k.
	a := mat.NewDense(size, size, nil)
	b := mat.NewVecDense(size, nil)
	for k := 0; k < size; k++ {
		if k <= n {
			a.Set(k, k, 1)
		}
		for j := 1; j <= m && j <= k; j++ {
			a.Set(k, n+j, -an[k-j])
		}
		b.SetVec(k, an[k])
	}

	var sol mat.VecDense
	if err := sol.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	num := make([]float64, n+1)
	for i := range num {
		num[i] = sol.AtVec(i)
	}
	den := make([]float64, m+1)
	den[0] = 1
	for j := 1; j <= m; j++ {
		den[j] = sol.AtVec(n + j)
	}

	return &Rational{
		Num: Polynomial{Coeffs: num},
		Den: Polynomial{Coeffs: den},
	}, nil
}
