package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/imposter/go/internal/reveal"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if getEnv("IMPOSTER_DEBUG", "") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	sessionID := uuid.New().String()[:8] // short ID for logging
	log.Logger = log.Logger.With().Str("session_id", sessionID).Logger()

	cfg, err := resolveConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	app, err := reveal.NewApp(cfg, clockwork.NewRealClock(), nil)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid session configuration")
	}

	log.Info().
		Str("room_code", app.RoomCode()).
		Int("slot_count", cfg.SlotCount).
		Int("slot", cfg.Slot).
		Int64("window_seconds", cfg.WindowSeconds).
		Msg("starting imposter reveal")

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	if err := app.Run(ctx, reveal.SinkFunc(render)); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("countdown refresher failed")
	}

	log.Info().Msg("imposter reveal shutdown complete")
}

// render writes one countdown line per tick. Carriage return keeps the
// countdown on a single terminal line between round changes.
func render(view reveal.View) {
	status := "you are the IMPOSTER"
	if !view.IsImposter {
		status = "secret word: " + view.SecretWord
	}
	fmt.Printf("\rround %d | %3ds left | slot %d | %s ", view.Round, view.SecondsRemaining, view.Slot, status)
}
