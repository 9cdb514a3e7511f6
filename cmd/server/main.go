// Package main implements the entry point for the seogen API server, which
// generates SEO titles, meta descriptions, keywords and product descriptions
// over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prachinebangla/seogen/internal/config"
	"github.com/prachinebangla/seogen/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seogen server: %v", err)
	}
}

// run loads configuration, sets up logging, builds the application and
// serves until SIGINT or SIGTERM.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, closer, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer func() {
		_ = closer.Close()
	}()

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"provider", cfg.LLM.Provider)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to initialize application", "error", err)
		return err
	}

	return app.Run(ctx)
}
