package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prachinebangla/seogen/internal/batch"
	"github.com/prachinebangla/seogen/internal/platform/logger"
)

func newBatchCommand(resolve resolveService, opts *rootOptions) *cobra.Command {
	var (
		company string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Analyze a list of product URLs, one per line",
		Long: `Analyze every URL listed in file, or on stdin when file is omitted or "-".
Blank lines and lines starting with # are skipped. One JSON object is printed
per URL, in input order.`,
		Example: `  seogen batch urls.txt --workers 4
  cat urls.txt | seogen batch --company "Health Hub"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			urls, err := readInputs(in)
			if err != nil {
				return err
			}
			if len(urls) == 0 {
				return nil
			}

			svc, err := resolve(cmd)
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if opts.debug {
				level = slog.LevelDebug
			}
			runner := batch.NewRunner(func(ctx context.Context, url string) (interface{}, error) {
				return svc.AnalyzeURL(ctx, url, company)
			}, batch.RunnerConfig{WorkerCount: workers}, logger.New(cmd.ErrOrStderr(), level))

			results := runner.Run(cmd.Context(), urls)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetEscapeHTML(false)
			failed := 0
			for _, result := range results {
				if result.Failed() {
					failed++
				}
				if err := encoder.Encode(result); err != nil {
					return fmt.Errorf("failed to write result: %w", err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d URLs failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&company, "company", "", companyFlagUsage)
	cmd.Flags().IntVar(&workers, "workers", batch.DefaultRunnerConfig().WorkerCount, "number of URLs analyzed concurrently")
	return cmd
}

// readInputs returns the non-blank, non-comment lines of r.
func readInputs(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
