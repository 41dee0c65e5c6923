package pade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBenchmark(t *testing.T) {
	r, err := Approximate(oneMinusExp8, 4)
	require.NoError(t, err)

	methods := []Approximation{
		Func{Label: "Exact", F: OneMinusExp},
		NewTaylorApprox(oneMinusExp8),
		r,
	}
	points := Linspace(0, 2, 21)
	results := Benchmark(methods, OneMinusExp, points)

	require.Len(t, results, 3)
	require.Equal(t, "Exact", results[0].Method)
	require.Equal(t, "Taylor-7", results[1].Method)
	require.Equal(t, "Pade-[3/4]", results[2].Method)

	require.Zero(t, results[0].MaxError)
	for _, res := range results {
		require.Equal(t, 21, res.TestPoints)
		require.LessOrEqual(t, res.Accuracy, res.MaxError)
	}

	// Both approximations degrade away from the expansion point.
	require.Equal(t, 2.0, results[1].MaxErrorAt)
	require.Equal(t, 2.0, results[2].MaxErrorAt)
	require.Less(t, results[2].MaxError, 1e-5)
}

func TestMaxErrorNaN(t *testing.T) {
	nan := Func{Label: "nan", F: func(float64) float64 { return math.NaN() }}
	e, at := MaxError(OneMinusExp, nan, []float64{0, 1})
	require.True(t, math.IsNaN(e))
	require.Equal(t, 0.0, at)
}

// counting records how often it is evaluated and returns a different value
// on each call, like a noisy encrypted evaluation.
type counting struct {
	calls int
}

func (c *counting) Name() string { return "counting" }

func (c *counting) Evaluate(x float64) float64 {
	c.calls++
	return x + float64(c.calls)
}

func TestBenchmarkEvaluatesOncePerPoint(t *testing.T) {
	c := &counting{}
	points := []float64{0, 1, 2}

	results := Benchmark([]Approximation{c}, func(x float64) float64 { return x }, points)
	require.Equal(t, len(points), c.calls)

	// errors are 1, 2, 3 from the single pass
	require.Equal(t, 2.0, results[0].Accuracy)
	require.Equal(t, 3.0, results[0].MaxError)
	require.Equal(t, 2.0, results[0].MaxErrorAt)
}
