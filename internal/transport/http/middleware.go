package transport_http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	port_platform "github.com/ledgercore/transactions-service/internal/ports/gateway/platform"
	"github.com/ledgercore/transactions-service/internal/telemetry"

	"github.com/go-chi/chi/v5"
)

const correlationIDHeader = "X-Correlation-Id"

type ctxKey int

const correlationIDKey ctxKey = 0

// CorrelationIDFromContext returns the correlation id stamped on the
// request, or "" outside the middleware.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// CorrelationID accepts a caller-supplied correlation id or mints one, and
// echoes it back on the response.
func CorrelationID(ids port_platform.IDGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationIDHeader)
			if id == "" {
				id = ids.NewUUID().String()
			}

			w.Header().Set(correlationIDHeader, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), correlationIDKey, id)))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs one line per request with outcome and timing.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r)

			logger.Info("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"correlation_id", CorrelationIDFromContext(r.Context()),
			)
		})
	}
}

// Metrics records prometheus counters and latency per route pattern.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r)

			path := chi.RouteContext(r.Context()).RoutePattern()
			if path == "" {
				path = r.URL.Path
			}

			telemetry.HTTPRequestsTotal.WithLabelValues(
				r.Method,
				path,
				strconv.Itoa(rec.status),
			).Inc()

			telemetry.HTTPRequestDuration.WithLabelValues(
				r.Method,
				path,
			).Observe(time.Since(start).Seconds())
		})
	}
}
