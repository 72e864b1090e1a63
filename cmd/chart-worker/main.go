package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/csmqbusy/personal-finances/internal/app"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/chart"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Chart.AmqpURL == "" {
		log.Fatal("chart.amqpURL (PF_AMQP_URL) is required for the chart worker")
	}

	appLogger := app.NewLogger(cfg)
	defer appLogger.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := chart.Dial(cfg.Chart.AmqpURL)
	if err != nil {
		appLogger.Error("Failed to connect to broker", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer conn.Close()

	renderer := chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height)
	server := chart.NewServer(conn.Channel(), cfg.Chart.Queue, renderer, cfg.Chart.Prefetch, appLogger)

	if err := server.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Chart worker stopped", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	appLogger.Info("Chart worker exited gracefully", nil)
}
