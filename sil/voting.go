package sil

import "fmt"

// Voting is a k-out-of-n gate over elements and nested votings. It fails
// when more than Redundancy of its inputs have failed, so Redundancy 0 is
// a series connection and Redundancy n-1 is full parallel redundancy.
type Voting struct {
	Elements   []int
	Votings    []Voting
	Redundancy int
}

// Failed reports whether the voting fails for the given element states,
// where bit i of states is set when element i has failed.
func (v Voting) Failed(states uint64) bool {
	failed := 0
	for _, id := range v.Elements {
		if (states>>uint(id))&1 == 1 {
			failed++
		}
	}
	for _, sub := range v.Votings {
		if sub.Failed(states) {
			failed++
		}
	}
	return failed > v.Redundancy
}

func (v Voting) check(elements int) error {
	if v.Redundancy < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRedundancy, v.Redundancy)
	}
	for _, id := range v.Elements {
		if id < 0 || id >= elements {
			return fmt.Errorf("%w: %d", ErrUnknownElement, id)
		}
	}
	for _, sub := range v.Votings {
		if err := sub.check(elements); err != nil {
			return err
		}
	}
	return nil
}
