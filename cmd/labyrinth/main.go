// Package main is the entry point for the labyrinth game.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/jkeller/labyrinth/internal/game"
	"github.com/jkeller/labyrinth/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_LABYRINTH_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg := game.FromEnv()

	// LABYRINTH_MODE=print writes the text map to stdout and exits,
	// skipping the interactive terminal entirely.
	if os.Getenv("LABYRINTH_MODE") == "print" {
		if err := game.PrintMap(ctx, cfg, os.Stdout); err != nil {
			log.Fatalf("Failed to print labyrinth: %v", err)
		}
		return
	}

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		g.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Without an API key nothing is set and telemetry stays disabled.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_LABYRINTH_API_KEY")
	if apiKey == "" {
		return
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	dataset := os.Getenv("HONEYCOMB_LABYRINTH_DATASET")
	if dataset == "" {
		dataset = "labyrinth" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
