package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/prachinebangla/seogen/internal/app"
	"github.com/prachinebangla/seogen/internal/config"
	"github.com/prachinebangla/seogen/internal/platform/logger"
	"github.com/prachinebangla/seogen/internal/service"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	// configFile is an explicit YAML config path
	configFile string
	// debug enables debug logging on stderr
	debug bool
}

// serviceFactory creates the content service used by every subcommand.
type serviceFactory func(ctx context.Context, opts rootOptions, stderr io.Writer) (service.ContentService, error)

// newRootCommand builds the command tree. newService is called lazily by the
// subcommand that runs.
func newRootCommand(newService serviceFactory) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "seogen",
		Short: "Generate SEO metadata for product pages",
		Long: `seogen generates SEO titles, meta descriptions, keywords and structured
product descriptions for e-commerce and pharmacy products.

Configuration is read from config.yaml, a .env file and SEOGEN_* environment
variables, for example SEOGEN_LLM_GEMINI_API_KEY.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"config file (default is ./config.yaml or ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")

	lazy := func(cmd *cobra.Command) (service.ContentService, error) {
		return newService(cmd.Context(), *opts, cmd.ErrOrStderr())
	}

	rootCmd.AddCommand(
		newAnalyzeURLCommand(lazy),
		newGenerateCommand(lazy),
		newParaphraseCommand(lazy),
		newDescribeCommand(lazy),
		newBatchCommand(lazy, opts),
	)
	return rootCmd
}

// buildService loads configuration and wires the real content service.
func buildService(ctx context.Context, opts rootOptions, stderr io.Writer) (service.ContentService, error) {
	path := opts.configFile
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := slog.LevelWarn
	if opts.debug {
		level = slog.LevelDebug
	}
	log := logger.New(stderr, level)

	components, err := app.Build(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return components.Service, nil
}
