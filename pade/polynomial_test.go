package pade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/dual"
)

func TestPolynomialEvaluate(t *testing.T) {
	p := NewPolynomial([]float64{1, -2, 3}) // 3x^2 - 2x + 1

	require.Equal(t, 1.0, p.Evaluate(0))
	require.Equal(t, 2.0, p.Evaluate(1))
	require.Equal(t, 17.0, p.Evaluate(-2))
}

func TestPolynomialString(t *testing.T) {
	tcs := []struct {
		coeffs []float64
		want   string
	}{
		{coeffs: []float64{0, 1, 0, 1.0 / 42}, want: "0.02381 x^3 + 1 x"},
		{coeffs: []float64{1, 1.0 / 2, 3.0 / 28, 1.0 / 84, 1.0 / 1680}, want: "0.0005952 x^4 + 0.0119 x^3 + 0.1071 x^2 + 0.5 x + 1"},
		{coeffs: []float64{-1, 0, -2}, want: "-2 x^2 - 1"},
		{coeffs: []float64{0, 0}, want: "0"},
		{coeffs: nil, want: "0"},
	}

	for _, tc := range tcs {
		got := Polynomial{Coeffs: tc.coeffs}.String()
		if got != tc.want {
			t.Fatalf("Polynomial(%v).String()=%q; want %q", tc.coeffs, got, tc.want)
		}
	}
}

func TestPolynomialEmpty(t *testing.T) {
	var p Polynomial
	require.Equal(t, -1, p.Degree())
	require.Equal(t, 0.0, p.Evaluate(3))
}

func TestNewPolynomialCopies(t *testing.T) {
	in := []float64{1, 2}
	p := NewPolynomial(in)
	in[0] = 5
	require.Equal(t, 1.0, p.Coeffs[0])
}

func TestPolynomialDual(t *testing.T) {
	p := NewPolynomial([]float64{1, -2, 3})
	d := p.Dual(dual.Number{Real: 2, Emag: 1})
	require.Equal(t, 9.0, d.Real)
	require.Equal(t, 10.0, d.Emag) // 6x - 2
}

func TestEvaluateAllMatchesEvaluate(t *testing.T) {
	r, err := Approximate(oneMinusExp8, 4)
	require.NoError(t, err)

	xs := Linspace(0, 10, 11)
	ys := r.EvaluateAll(xs)
	for i, x := range xs {
		require.Equal(t, r.Evaluate(x), ys[i])
	}
	require.Equal(t, r.Num.EvaluateAll(xs)[3], r.Num.Evaluate(xs[3]))
}

func TestRationalZeroDenominatorIsUnguarded(t *testing.T) {
	r := &Rational{
		Num: NewPolynomial([]float64{1}),
		Den: NewPolynomial([]float64{-1, 1}), // root at x = 1
	}
	require.True(t, math.IsInf(r.Evaluate(1), 1))

	r.Num = NewPolynomial([]float64{-1, 1})
	require.True(t, math.IsNaN(r.Evaluate(1)))
}
