package sil

import (
	"math"

	"github.com/z3rotig4r/pade_approx/pade"
)

// ElementType holds the failure rates shared by every element of one kind.
// Rates are per hour, times are hours.
type ElementType struct {
	DangerousDetected   float64 `validate:"gte=0"`       // lambda_DD
	DangerousUndetected float64 `validate:"gte=0"`       // lambda_DU
	ProofTestCoverage   float64 `validate:"gte=0,lte=1"` // PTC, share of lambda_DU found by proof tests
	CommonDetected      float64 `validate:"gte=0,lte=1"` // beta_D
	CommonUndetected    float64 `validate:"gte=0,lte=1"` // beta
	MeanRepairTime      float64 `validate:"gte=0"`       // MRT
	MeanTimeToRestore   float64 `validate:"gte=0"`       // MTTR
	// ProofTestInterval is the period of proof tests. Zero means the
	// element is never proof tested.
	ProofTestInterval float64 `validate:"gte=0"`
}

func (e ElementType) sinceProofTest(t float64) float64 {
	if e.ProofTestInterval <= 0 {
		return t
	}
	return math.Mod(t, e.ProofTestInterval)
}

// failure sums the undetected-failure probabilities and the repair-time
// unavailability for the fractions (1-beta_D, 1-beta) or (beta_D, beta).
func (e ElementType) failure(t, detected, undetected float64) float64 {
	du := e.DangerousUndetected * undetected

	p := pade.ExponentialDist(du*e.ProofTestCoverage, e.sinceProofTest(t))
	p += pade.ExponentialDist(du*(1-e.ProofTestCoverage), t)

	p += e.MeanRepairTime * e.DangerousDetected * detected
	p += e.MeanTimeToRestore * du
	return p
}

// IndependentFailure is the probability that one element of this type is
// failed at mission time t for reasons of its own.
func (e ElementType) IndependentFailure(t float64) float64 {
	return e.failure(t, 1-e.CommonDetected, 1-e.CommonUndetected)
}

// CommonFailure is the probability that every element of this type is
// failed at mission time t due to a common cause.
func (e ElementType) CommonFailure(t float64) float64 {
	return e.failure(t, e.CommonDetected, e.CommonUndetected)
}
