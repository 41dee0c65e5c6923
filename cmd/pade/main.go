package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/z3rotig4r/pade_approx/internal/app"
	"github.com/z3rotig4r/pade_approx/internal/config"
	"github.com/z3rotig4r/pade_approx/internal/logger"
	"github.com/z3rotig4r/pade_approx/internal/window"
)

func main() {
	boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadWithEnv()
	if err != nil {
		boot.Fatal().Err(err).Msg("config load failed")
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		boot.Fatal().Err(err).Msg("logger init failed")
	}

	ctx, stop := signalContext(cfg.Display.Mode)
	defer stop()

	log.Info().Str("display", cfg.Display.Mode).Str("output", cfg.Plot.Output).Msg("starting")

	if err := app.New(cfg, log, os.Stdout, window.Show).Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("pade failed")
	}
}

// signalContext cancels on SIGINT or SIGTERM in http mode. Only the HTTP
// viewer watches ctx; in window mode ebiten owns the main loop and the
// default signal handling must stay in place.
func signalContext(mode string) (context.Context, context.CancelFunc) {
	if mode != "http" {
		return context.Background(), func() {}
	}
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
