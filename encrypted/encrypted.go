// Package encrypted evaluates rational approximants under CKKS homomorphic
// encryption. Numerator and denominator are evaluated on ciphertexts; the
// division happens after decryption.
package encrypted

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/tuneinsight/lattigo/v6/core/rlwe"
	"github.com/tuneinsight/lattigo/v6/schemes/ckks"

	"github.com/z3rotig4r/pade_approx/pade"
)

var (
	// ErrTooManyPoints is returned when the inputs do not fit in one ciphertext.
	ErrTooManyPoints = errors.New("encrypted: more points than slots")

	// ErrInsufficientLevels is returned when the ciphertext has fewer levels
	// left than the polynomial degree.
	ErrInsufficientLevels = errors.New("encrypted: not enough levels for polynomial degree")

	ErrEmptyPolynomial = errors.New("encrypted: empty polynomial")
)

// DefaultParameters is the LogN=13, MaxLevel=5 parameter set.
// Inputs must stay small (|x| of order 1): with a 2^40 scale the
// intermediate x^4 term has to fit in the remaining modulus.
func DefaultParameters() (ckks.Parameters, error) {
	return ckks.NewParametersFromLiteral(ckks.ParametersLiteral{
		LogN:            13,
		LogQ:            []int{60, 40, 40, 40, 40, 60}, // MaxLevel=5
		LogP:            []int{61},
		LogDefaultScale: 40,
	})
}

// Evaluator owns a key pair and the CKKS machinery for one parameter set.
type Evaluator struct {
	params    ckks.Parameters
	encoder   *ckks.Encoder
	encryptor *rlwe.Encryptor
	decryptor *rlwe.Decryptor
	evaluator *ckks.Evaluator
}

// NewEvaluator generates fresh keys for params.
func NewEvaluator(params ckks.Parameters) *Evaluator {
	kgen := ckks.NewKeyGenerator(params)
	sk := kgen.GenSecretKeyNew()
	rlk := kgen.GenRelinearizationKeyNew(sk)
	evk := rlwe.NewMemEvaluationKeySet(rlk)

	return &Evaluator{
		params:    params,
		encoder:   ckks.NewEncoder(params),
		encryptor: ckks.NewEncryptor(params, sk),
		decryptor: ckks.NewDecryptor(params, sk),
		evaluator: ckks.NewEvaluator(params, evk),
	}
}

// Slots is the number of points one call can evaluate.
func (e *Evaluator) Slots() int {
	return e.params.MaxSlots()
}

// Encrypt packs xs into the slots of one ciphertext.
func (e *Evaluator) Encrypt(xs []float64) (*rlwe.Ciphertext, error) {
	if len(xs) > e.Slots() {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyPoints, len(xs), e.Slots())
	}

	values := make([]complex128, e.Slots())
	for i, x := range xs {
		values[i] = complex(x, 0)
	}

	pt := ckks.NewPlaintext(e.params, e.params.MaxLevel())
	if err := e.encoder.Encode(values, pt); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	ct, err := e.encryptor.EncryptNew(pt)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	return ct, nil
}

// Decrypt returns the first n slots of ct.
func (e *Evaluator) Decrypt(ct *rlwe.Ciphertext, n int) ([]float64, error) {
	pt := e.decryptor.DecryptNew(ct)
	values := make([]complex128, e.Slots())
	if err := e.encoder.Decode(pt, values); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(values[i])
	}
	return out, nil
}

// EvaluatePolynomial computes p(ct) slot-wise with Horner's method.
// Each step multiplies by x, rescales and adds the next coefficient as a
// scalar, so a degree-d polynomial consumes exactly d levels.
func (e *Evaluator) EvaluatePolynomial(ct *rlwe.Ciphertext, p pade.Polynomial) (*rlwe.Ciphertext, error) {
	n := p.Degree()
	if n < 0 {
		return nil, ErrEmptyPolynomial
	}
	if n > ct.Level() {
		return nil, fmt.Errorf("%w: degree %d, level %d", ErrInsufficientLevels, n, ct.Level())
	}

	// Start with the highest degree coefficient. A non-integer scalar is
	// scaled by the current prime, so the rescale restores ct's scale;
	// an integer scalar leaves the scale alone.
	lead := p.Coeffs[n]
	result, err := e.evaluator.MulNew(ct, lead)
	if err != nil {
		return nil, fmt.Errorf("scale by c%d: %w", n, err)
	}
	if n > 0 && lead != math.Trunc(lead) {
		if err := e.evaluator.Rescale(result, result); err != nil {
			return nil, fmt.Errorf("rescale c%d: %w", n, err)
		}
	}

	// result = result*x + c[i]
	for i := n - 1; i >= 0; i-- {
		if i < n-1 {
			if err := e.evaluator.MulRelin(result, ct, result); err != nil {
				return nil, fmt.Errorf("multiply by x (c%d): %w", i, err)
			}
			if err := e.evaluator.Rescale(result, result); err != nil {
				return nil, fmt.Errorf("rescale (c%d): %w", i, err)
			}
		}

		if p.Coeffs[i] != 0 {
			if err := e.evaluator.Add(result, p.Coeffs[i], result); err != nil {
				return nil, fmt.Errorf("add c%d: %w", i, err)
			}
		}
	}

	return result, nil
}

// EvaluateRational encrypts xs, evaluates numerator and denominator on the
// ciphertext, decrypts both and divides. As in plaintext, a zero
// denominator is not guarded.
func (e *Evaluator) EvaluateRational(r *pade.Rational, xs []float64) ([]float64, error) {
	ct, err := e.Encrypt(xs)
	if err != nil {
		return nil, err
	}

	numCt, err := e.EvaluatePolynomial(ct.CopyNew(), r.Num)
	if err != nil {
		return nil, fmt.Errorf("numerator: %w", err)
	}
	denCt, err := e.EvaluatePolynomial(ct.CopyNew(), r.Den)
	if err != nil {
		return nil, fmt.Errorf("denominator: %w", err)
	}

	num, err := e.Decrypt(numCt, len(xs))
	if err != nil {
		return nil, err
	}
	den, err := e.Decrypt(denCt, len(xs))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	for i := range out {
		out[i] = num[i] / den[i]
	}
	return out, nil
}

// Approx adapts an encrypted rational evaluation to pade.Approximation so it
// can be benchmarked next to the plaintext methods. Each call encrypts one point.
type Approx struct {
	eval *Evaluator
	r    *pade.Rational
	log  zerolog.Logger
}

func NewApprox(eval *Evaluator, r *pade.Rational, log zerolog.Logger) *Approx {
	return &Approx{eval: eval, r: r, log: log}
}

func (a *Approx) Name() string {
	return "CKKS-" + a.r.Name()
}

// Evaluate returns NaN if the encrypted evaluation fails; the error is logged.
func (a *Approx) Evaluate(x float64) float64 {
	ys, err := a.eval.EvaluateRational(a.r, []float64{x})
	if err != nil {
		a.log.Error().Err(err).Float64("x", x).Str("method", a.Name()).Msg("encrypted evaluation failed")
		return math.NaN()
	}
	return ys[0]
}
