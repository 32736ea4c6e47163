package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// withLogging attaches a request-scoped logger to the context and logs one
// summary line per request with method, path, status and duration.
func (h *HTTPHandler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqLogger := h.logger.With().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		ctx := reqLogger.WithContext(r.Context())

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		reqLogger.Info().
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
