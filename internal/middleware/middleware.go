// Package middleware holds the HTTP middleware shared by all routes.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CorrelationHeader is the header carrying the per-request correlation id,
// inbound and outbound.
const CorrelationHeader = "X-Correlation-Id"

type ctxKey int

const (
	ctxKeyCorrelationID ctxKey = iota
)

// CorrelationID returns the correlation id resolved for this request, or ""
// outside of a request handled by CorrelationID middleware.
func CorrelationID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyCorrelationID).(string)
	return v
}

// WithCorrelationID resolves the request's correlation id: the inbound header
// value verbatim when present, a fresh UUID otherwise. The resolved value is
// echoed on the response header and stored in the request context.
func WithCorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(CorrelationHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyCorrelationID, id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger emits one log line per request including the correlation id.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sr, r)
			log.Info("http_request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sr.status,
				"latency_ms", float64(time.Since(start).Microseconds())/1000.0,
				"correlation_id", CorrelationID(r.Context()),
			)
		})
	}
}
