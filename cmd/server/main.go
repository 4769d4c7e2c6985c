package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/nfrund/flexe/internal/app"
	"github.com/nfrund/flexe/internal/config"
	"github.com/nfrund/flexe/internal/logging"
	"github.com/nfrund/flexe/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		// slog is not configured yet.
		log.Fatalf("invalid configuration: %v", err)
	}
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	injector := app.NewInjector(cfg)
	s, err := server.New(ctx, cfg, injector, app.NewModules())
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}

	if err := s.Start(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
