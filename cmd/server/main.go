package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/nfrund/courseboard/internal/config"
	"github.com/nfrund/courseboard/internal/logging"
	"github.com/nfrund/courseboard/internal/server"
)

func main() {
	logging.New()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	s, err := server.New(ctx, cfg)
	cancel()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
