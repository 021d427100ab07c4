package http

import (
	"net/http"
	"time"

	"github.com/melodia-app/melodia-server/internal/logger"
)

// withLogging emits one access-log line per request with method, URI,
// status, response size and wall time. It wraps the ResponseWriter to
// capture what the handler actually wrote, and uses the request-scoped
// logger so the line carries the trace id set upstream.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
