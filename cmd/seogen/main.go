// Package main implements seogen, a command-line interface to the SEO content
// operations: URL analysis, metadata generation, paraphrasing and structured
// product descriptions.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(buildService).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
