package pade

import "gonum.org/v1/gonum/floats"

// DefaultSamples is the number of points Linspace callers use when they
// have no better idea.
const DefaultSamples = 50

// Linspace returns count evenly spaced values from start to stop inclusive.
// The last element is exactly stop. count == 1 yields {start}.
func Linspace(start, stop float64, count int) []float64 {
	switch {
	case count <= 0:
		return []float64{}
	case count == 1:
		return []float64{start}
	}

	xs := floats.Span(make([]float64, count), start, stop)
	xs[count-1] = stop
	return xs
}
