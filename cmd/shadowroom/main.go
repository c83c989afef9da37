// Package main is the entry point for Shadowroom.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/shadowroom/internal/game"
	"github.com/samdwyer/shadowroom/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	telemetry.ConfigureHoneycombEnv(
		os.Getenv("HONEYCOMB_SHADOWROOM_API_KEY"),
		os.Getenv("HONEYCOMB_SHADOWROOM_DATASET"),
	)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("Shadowroom needs an interactive terminal")
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			// ctx may already be cancelled here; flush with a fresh one.
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
