package sil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/integrate"

	"github.com/z3rotig4r/pade_approx/pade"
)

const (
	// MaxVariables bounds element types plus elements; compilation
	// enumerates 2^n states.
	MaxVariables = 40
	// slowVariables is where compilation starts to take noticeably long.
	slowVariables = 20
)

var validate = validator.New()

// state is one combination of failures. Bit i of individual marks element
// i failed on its own; bit j of common marks every element of type j failed.
type state struct {
	common     uint64
	individual uint64
}

// System is a safety instrumented system: typed elements wired through
// votings. Build it, Compile it, then query failure probabilities.
type System struct {
	types    []ElementType
	elements []int
	final    *Voting

	compiled   bool
	failStates []state

	log zerolog.Logger
}

func NewSystem(log zerolog.Logger) *System {
	return &System{log: log}
}

// AddElementType registers et and returns its ID.
func (s *System) AddElementType(et ElementType) (int, error) {
	if s.compiled {
		return 0, ErrCompiled
	}
	if err := validateElementType(et); err != nil {
		return 0, err
	}
	s.types = append(s.types, et)
	return len(s.types) - 1, nil
}

// AddElement adds an element of the given type and returns its ID.
func (s *System) AddElement(typeID int) (int, error) {
	if s.compiled {
		return 0, ErrCompiled
	}
	if typeID < 0 || typeID >= len(s.types) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownElementType, typeID)
	}
	s.elements = append(s.elements, typeID)
	return len(s.elements) - 1, nil
}

// SetFinalVoting sets the voting whose failure is the system failure.
func (s *System) SetFinalVoting(v Voting) error {
	if s.compiled {
		return ErrCompiled
	}
	s.final = &v
	return nil
}

// Compile enumerates every combination of individual and common-cause
// failures and keeps those that fail the final voting.
func (s *System) Compile() error {
	if s.compiled {
		return ErrCompiled
	}
	if s.final == nil {
		return ErrNoFinalVoting
	}
	if err := s.final.check(len(s.elements)); err != nil {
		return err
	}

	vars := len(s.types) + len(s.elements)
	if vars > MaxVariables {
		return fmt.Errorf("%w: %d > %d", ErrTooManyVariables, vars, MaxVariables)
	}
	if vars > slowVariables {
		s.log.Warn().Int("variables", vars).Msg("large system, compilation will be slow")
	}

	nt := uint(len(s.types))
	for idx := uint64(0); idx < 1<<uint(vars); idx++ {
		st := state{
			common:     idx & (1<<nt - 1),
			individual: idx >> nt,
		}
		if s.final.Failed(s.elementStates(st)) {
			s.failStates = append(s.failStates, st)
		}
	}

	s.compiled = true
	s.log.Debug().
		Int("variables", vars).
		Int("fail_states", len(s.failStates)).
		Msg("system compiled")
	return nil
}

// elementStates merges common-cause failures into the per-element bitmap.
func (s *System) elementStates(st state) uint64 {
	states := st.individual
	for i, typeID := range s.elements {
		states |= ((st.common >> uint(typeID)) & 1) << uint(i)
	}
	return states
}

func (s *System) probability(st state, t float64) float64 {
	p := 1.0
	for i, typeID := range s.elements {
		q := s.types[typeID].IndependentFailure(t)
		if (st.individual>>uint(i))&1 == 1 {
			p *= q
		} else {
			p *= 1 - q
		}
	}
	for j, et := range s.types {
		q := et.CommonFailure(t)
		if (st.common>>uint(j))&1 == 1 {
			p *= q
		} else {
			p *= 1 - q
		}
	}
	return p
}

// FailureProbability is the probability that the system is failed at
// mission time t.
func (s *System) FailureProbability(t float64) (float64, error) {
	if !s.compiled {
		return 0, ErrNotCompiled
	}

	var p float64
	for _, st := range s.failStates {
		p += s.probability(st, t)
	}
	return p, nil
}

// AverageFailureProbability is the mean failure probability over
// [0, lifetime] (PFDavg), integrated with the trapezoidal rule on samples
// evenly spaced points.
func (s *System) AverageFailureProbability(lifetime float64, samples int) (float64, error) {
	if !s.compiled {
		return 0, ErrNotCompiled
	}
	if lifetime <= 0 || samples < 2 {
		return 0, fmt.Errorf("%w: lifetime %v, samples %d", ErrInvalidIntegration, lifetime, samples)
	}

	ts := pade.Linspace(0, lifetime, samples)
	ps := make([]float64, len(ts))
	for i, t := range ts {
		ps[i], _ = s.FailureProbability(t)
	}
	return integrate.Trapezoidal(ts, ps) / lifetime, nil
}

func validateElementType(et ElementType) error {
	err := validate.Struct(et)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s(%s) with value %v",
			fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidElementType, strings.Join(msgs, "; "))
}
