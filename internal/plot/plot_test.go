package plot

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/z3rotig4r/pade_approx/pade"
)

func comparison(t *testing.T) Comparison {
	t.Helper()

	r, err := pade.Approximate(pade.OneMinusExpCoefficients(8), 4)
	require.NoError(t, err)

	xs := pade.Linspace(0, 1000, pade.DefaultSamples)
	exact := make([]float64, len(xs))
	for i, x := range xs {
		exact[i] = pade.OneMinusExp(x)
	}
	return Comparison{X: xs, Exact: exact, Approx: r.EvaluateAll(xs)}
}

func TestRender(t *testing.T) {
	fig, err := Render(comparison(t), Options{Width: 2, Height: 1.5, DPI: 50})
	require.NoError(t, err)
	require.Zero(t, fig.Dropped)

	require.Equal(t, 100, fig.Image.Bounds().Dx())
	require.Equal(t, 75, fig.Image.Bounds().Dy())

	img, err := png.Decode(bytes.NewReader(fig.PNG))
	require.NoError(t, err)
	require.Equal(t, fig.Image.Bounds().Size(), img.Bounds().Size())
}

func TestNewSkipsNonFinite(t *testing.T) {
	c := Comparison{
		X:      []float64{0, 1, 2, 3},
		Exact:  []float64{0, 0.5, 0.8, 0.9},
		Approx: []float64{0, math.Inf(1), math.NaN(), 0.9},
	}
	p, dropped, err := New(c)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, 2, dropped)
}

func TestNewLengthMismatch(t *testing.T) {
	_, _, err := New(Comparison{X: []float64{0, 1}, Exact: []float64{0}, Approx: []float64{0, 1}})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFigureSave(t *testing.T) {
	fig, err := Render(comparison(t), Options{Width: 1, Height: 1, DPI: 40})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "pade.png")
	require.NoError(t, fig.Save(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, fig.PNG, b)
}
