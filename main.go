package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/travelwise/amadeus-mcp/config"
	"github.com/travelwise/amadeus-mcp/log"
	"github.com/travelwise/amadeus-mcp/providers/amadeus"
	"github.com/travelwise/amadeus-mcp/server"
	"github.com/travelwise/amadeus-mcp/tools"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	log.Init()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Infof(context.Background(), "termination signal received, exiting")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(ctx, "Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf(ctx, "Invalid config: %v", err)
	}

	client, err := amadeus.NewClient(
		cfg.Amadeus.ClientID,
		cfg.Amadeus.ClientSecret,
		cfg.Amadeus.Production,
		time.Duration(cfg.Amadeus.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf(ctx, "Failed to create Amadeus client: %v", err)
	}

	registry := tools.NewRegistry(
		tools.NewFlightTool(client),
		tools.NewHotelTool(client),
	)

	srv := server.New(registry)

	switch cfg.Server.Transport {
	case config.TransportSSE:
		if err := srv.ServeSSE(ctx, cfg.Server.Port); err != nil {
			log.Fatalf(ctx, "SSE server failed: %v", err)
		}
	default:
		if err := srv.ServeStdio(); err != nil {
			log.Fatalf(ctx, "stdio server failed: %v", err)
		}
	}
}
