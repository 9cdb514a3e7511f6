package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prachinebangla/seogen/internal/api/shared"
	"github.com/prachinebangla/seogen/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that adds a trace ID and a request
// logger to the request context and echoes the trace ID in the response.
// It should be applied early in the middleware chain so that all subsequent
// handlers have access to the trace ID.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())

			reqLog := log
			if requestID := middleware.GetReqID(ctx); requestID != "" {
				reqLog = reqLog.With(slog.String("request_id", requestID))
			}
			ctx = logger.WithLogger(ctx, reqLog)

			w.Header().Set(shared.TraceIDHeader, shared.GetTraceID(ctx))

			reqLog.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
