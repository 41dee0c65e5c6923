package pade

import "errors"

var (
	// ErrDenominatorOrder is returned when the denominator degree leaves no room
	// for a numerator in the given coefficient sequence.
	ErrDenominatorOrder = errors.New("pade: denominator order must be smaller than len(coefficients)-1")
	// ErrNumeratorOrder is returned for a negative numerator degree.
	ErrNumeratorOrder = errors.New("pade: numerator order must not be negative")
	// ErrInsufficientCoefficients is returned when numerator+denominator+1
	// exceeds the number of Taylor coefficients.
	ErrInsufficientCoefficients = errors.New("pade: numerator+denominator order must be smaller than len(coefficients)")
	// ErrSingularSystem is returned when the coefficient system cannot be solved.
	ErrSingularSystem = errors.New("pade: singular coefficient system")
)
