// Package batch runs one operation over many inputs with a bounded pool of
// workers. The CLI uses it to analyze lists of product URLs.
package batch

import (
	"context"
	"log/slog"
	"sync"
)

// Job is one input waiting to be processed.
type Job struct {
	// Index is the position of the input, used to keep results in order
	Index int
	// Input is the raw input, such as a product URL
	Input string
}

// Result is the outcome of one Job.
type Result struct {
	Index  int         `json:"-"`
	Input  string      `json:"input"`
	Output interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Failed reports whether the job ended in an error.
func (r Result) Failed() bool {
	return r.Error != ""
}

// ProcessFunc handles a single input.
type ProcessFunc func(ctx context.Context, input string) (interface{}, error)

// RunnerConfig holds configuration for the runner.
type RunnerConfig struct {
	// WorkerCount determines how many inputs are processed concurrently.
	// If zero or negative, defaults to 1.
	WorkerCount int

	// QueueSize determines the buffer size of the job channel. If zero or
	// negative, defaults to WorkerCount.
	QueueSize int
}

// DefaultRunnerConfig returns a RunnerConfig with reasonable defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		WorkerCount: 2,
		QueueSize:   100,
	}
}

// Runner processes inputs with a fixed number of worker goroutines.
type Runner struct {
	process    ProcessFunc
	config     RunnerConfig
	logger     *slog.Logger
	errHandler func(job Job, err error)
}

// NewRunner creates a Runner calling process for every input.
func NewRunner(process ProcessFunc, config RunnerConfig, logger *slog.Logger) *Runner {
	if config.WorkerCount <= 0 {
		logger.Warn("invalid worker count specified, using default",
			"specified_count", config.WorkerCount,
			"default_count", 1)
		config.WorkerCount = 1
	}
	if config.QueueSize <= 0 {
		config.QueueSize = config.WorkerCount
	}

	return &Runner{
		process: process,
		config:  config,
		logger:  logger,
		errHandler: func(job Job, err error) {
			// Default error handler just logs the error
			logger.Warn("job failed",
				"index", job.Index,
				"input", job.Input,
				"error", err)
		},
	}
}

// SetErrorHandler replaces the function called for every failed job.
func (r *Runner) SetErrorHandler(handler func(job Job, err error)) {
	if handler != nil {
		r.errHandler = handler
	}
}

// Run processes inputs and returns one Result per input, in input order.
// Canceling ctx stops the workers once their current jobs return; inputs
// never started carry the context error.
func (r *Runner) Run(ctx context.Context, inputs []string) []Result {
	results := make([]Result, len(inputs))
	done := make([]bool, len(inputs))
	jobs := make(chan Job, r.config.QueueSize)

	go func() {
		defer close(jobs)
		for i, input := range inputs {
			select {
			case <-ctx.Done():
				return
			case jobs <- Job{Index: i, Input: input}:
			}
		}
	}()

	var wg sync.WaitGroup
	for id := 0; id < r.config.WorkerCount; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			r.worker(ctx, id, jobs, results, done)
		}(id)
	}
	wg.Wait()

	for i, input := range inputs {
		if !done[i] {
			cause := context.Cause(ctx)
			if cause == nil {
				cause = context.Canceled
			}
			results[i] = Result{Index: i, Input: input, Error: cause.Error()}
		}
	}
	return results
}

// worker processes jobs until the channel closes or ctx is canceled. Each
// job index is owned by exactly one worker, so results needs no lock.
func (r *Runner) worker(ctx context.Context, id int, jobs <-chan Job, results []Result, done []bool) {
	r.logger.Debug("starting worker", "worker_id", id)

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("stopping worker", "worker_id", id)
			return
		case job, ok := <-jobs:
			if !ok {
				r.logger.Debug("job channel closed, stopping worker", "worker_id", id)
				return
			}
			if ctx.Err() != nil {
				return
			}
			results[job.Index] = r.processJob(ctx, job, id)
			done[job.Index] = true
		}
	}
}

// processJob handles execution of a single job.
func (r *Runner) processJob(ctx context.Context, job Job, workerID int) Result {
	logger := r.logger.With(
		"index", job.Index,
		"worker_id", workerID,
	)
	logger.DebugContext(ctx, "processing job", "input", job.Input)

	output, err := r.process(ctx, job.Input)
	if err != nil {
		r.errHandler(job, err)
		return Result{Index: job.Index, Input: job.Input, Error: err.Error()}
	}

	logger.DebugContext(ctx, "job completed successfully")
	return Result{Index: job.Index, Input: job.Input, Output: output}
}
