package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prachinebangla/seogen/internal/app"
	"github.com/prachinebangla/seogen/internal/config"
)

// application holds all the shared application dependencies.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	components *app.App
}

// newApplication creates a new application instance with all dependencies
// initialized. Build options are passed to app.Build.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...app.Option) (*application, error) {
	components, err := app.Build(ctx, cfg, logger, opts...)
	if err != nil {
		return nil, err
	}

	return &application{
		config:     cfg,
		logger:     logger,
		components: components,
	}, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or the server
// fails.
func (a *application) Run(ctx context.Context) error {
	router := a.setupRouter()

	if err := a.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
