package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/clinicwave/usermgmt/pkg/idx"
)

// RequestIDHeader carries the request ID in and out of the service.
const RequestIDHeader = "X-Request-ID"

// HTTPMiddleware logs requests and attaches a contextual logger into request
// context. The request ID is echoed back in the response headers.
func HTTPMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = idx.New().String()
			}
			w.Header().Set(RequestIDHeader, reqID)

			logger := base.With(
				"req_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			r = r.WithContext(WithContext(r.Context(), logger))
			next.ServeHTTP(rw, r)

			logger.Info("http_request",
				"status", rw.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"user_agent", r.UserAgent(),
			)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter

	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
