// Package logger configures the process-wide slog logger and carries
// request-scoped loggers through a context.Context.
//
// Setup builds a JSON handler at the configured level, optionally teeing to a
// size-rotated file. ContextHandler adds the trace_id stored by WithTraceID to
// every record logged with a context, so handlers only need to pass r.Context().
package logger
