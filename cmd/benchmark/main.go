package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/z3rotig4r/pade_approx/encrypted"
	"github.com/z3rotig4r/pade_approx/internal/app"
	"github.com/z3rotig4r/pade_approx/internal/logger"
	"github.com/z3rotig4r/pade_approx/pade"
)

const separator = "========================================================================"

func main() {
	log := logger.NewWithWriter(os.Stderr, zerolog.InfoLevel, "console", "")

	r, err := pade.Approximate(app.Coefficients, app.DenominatorDegree)
	if err != nil {
		log.Fatal().Err(err).Msg("approximation failed")
	}

	fmt.Println(separator)
	fmt.Println("Approximations of 1 - exp(-x)")
	fmt.Println(separator)
	fmt.Printf("Numerator:   %s\n", r.Num)
	fmt.Printf("Denominator: %s\n", r.Den)

	_, d1, d2 := pade.Derivatives(r, 0)
	fmt.Printf("Derivatives at 0: r'(0)=%.12f r''(0)=%.12f (exact 1, -1)\n", d1, d2)

	methods := []pade.Approximation{
		pade.NewTaylorApprox(app.Coefficients[:5]),
		pade.NewTaylorApprox(app.Coefficients),
		r,
		pade.Func{Label: "ExponentialDist", F: func(x float64) float64 { return pade.ExponentialDist(1, x) }},
	}

	printTable("Plaintext, x in [0, 10]", pade.Benchmark(methods, pade.OneMinusExp, pade.Linspace(0, 10, 41)))

	params, err := encrypted.DefaultParameters()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create CKKS parameters")
	}
	log.Info().
		Int("log_n", params.LogN()).
		Int("max_level", params.MaxLevel()).
		Int("max_slots", params.MaxSlots()).
		Msg("CKKS parameters")

	start := time.Now()
	eval := encrypted.NewEvaluator(params)
	log.Info().Dur("took", time.Since(start)).Msg("keys generated")

	points := pade.Linspace(0, 2, 9)
	start = time.Now()
	ckksMethods := append(methods[:3:3], encrypted.NewApprox(eval, r, log))
	printTable("CKKS comparison, x in [0, 2]", pade.Benchmark(ckksMethods, pade.OneMinusExp, points))
	fmt.Printf("\nTotal benchmark time: %v\n", time.Since(start))
}

func printTable(title string, results []pade.BenchmarkResult) {
	fmt.Printf("\n%s\n", title)
	fmt.Println(strings.Repeat("-", len(title)))
	fmt.Printf("%-20s | %-12s | %-12s | %-8s\n", "Method", "Mean Error", "Max Error", "At x")
	fmt.Println(strings.Repeat("-", 62))

	for _, res := range results {
		fmt.Printf("%-20s | %.6e | %.6e | %8.3f\n", res.Method, res.Accuracy, res.MaxError, res.MaxErrorAt)
	}
}
