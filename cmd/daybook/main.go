package main

import (
	"context"
	"log/slog"
	"os"

	"daybook/internal/cli"
	"daybook/internal/config"
	"daybook/internal/logging"
)

func main() {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		logger.Error(context.Background(), "failed to start", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(context.Background())
}
