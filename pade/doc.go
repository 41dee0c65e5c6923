// Package pade builds rational (Padé) approximants from Taylor coefficients
// and compares them with the functions they approximate.
//
// The driver's use is a single call:
//
//	r, err := pade.Approximate(pade.OneMinusExpCoefficients(8), 4)
//
// which yields r.Num = x + x^3/42 and
// r.Den = 1 + x/2 + 3x^2/28 + x^3/84 + x^4/1680.
package pade
