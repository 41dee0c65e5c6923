package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/z3rotig4r/pade_approx/internal/logger"
	"github.com/z3rotig4r/pade_approx/sil"
)

// [sensor1]---[valve1]---|
//                        | (1oo2) ---|
// [sensor2]--------------|           | (2oo2) ---->
// [sensor3]--------------------------|
func main() {
	log := logger.NewWithWriter(os.Stderr, zerolog.InfoLevel, "console", "")

	system, err := build(log)
	if err != nil {
		log.Fatal().Err(err).Msg("build system")
	}

	p, err := system.FailureProbability(1000)
	if err != nil {
		log.Fatal().Err(err).Msg("failure probability")
	}
	fmt.Printf("Failure probability after 1000 h (proof test every 400 h): %.6e\n", p)

	avg, err := system.AverageFailureProbability(1000, 10001)
	if err != nil {
		log.Fatal().Err(err).Msg("average failure probability")
	}
	fmt.Printf("Average failure probability over 1000 h: %.6e\n", avg)
}

func build(log zerolog.Logger) (*sil.System, error) {
	s := sil.NewSystem(log)

	sensor, err := s.AddElementType(sil.ElementType{
		DangerousDetected:   0.001,
		DangerousUndetected: 0.0003,
		ProofTestCoverage:   0.8,
		CommonDetected:      0.02,
		CommonUndetected:    0.01,
		MeanRepairTime:      8,
		MeanTimeToRestore:   8,
		ProofTestInterval:   400,
	})
	if err != nil {
		return nil, err
	}
	valve, err := s.AddElementType(sil.ElementType{
		DangerousDetected:   0.001,
		DangerousUndetected: 0.001,
		ProofTestCoverage:   0.6,
		CommonDetected:      0.02,
		CommonUndetected:    0.01,
		MeanRepairTime:      8,
		MeanTimeToRestore:   8,
		ProofTestInterval:   400,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, 4)
	for _, typeID := range []int{sensor, sensor, sensor, valve} {
		id, err := s.AddElement(typeID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	sensor1, sensor2, sensor3, valve1 := ids[0], ids[1], ids[2], ids[3]

	// elements in series are a voting without redundancy
	line := sil.Voting{Elements: []int{sensor1, valve1}}
	oneOfTwo := sil.Voting{Elements: []int{sensor2}, Votings: []sil.Voting{line}, Redundancy: 1}
	final := sil.Voting{Elements: []int{sensor3}, Votings: []sil.Voting{oneOfTwo}, Redundancy: 1}

	if err := s.SetFinalVoting(final); err != nil {
		return nil, err
	}
	if err := s.Compile(); err != nil {
		return nil, err
	}
	return s, nil
}
