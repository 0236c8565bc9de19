package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Logger injects a request-scoped zerolog logger into the context and emits
// one line per served request.
func Logger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			reqLogger := logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", req.RemoteAddr).
				Logger()

			ctx := reqLogger.WithContext(req.Context())
			ww := chimiddleware.NewWrapResponseWriter(w, req.ProtoMajor)

			start := time.Now()
			next.ServeHTTP(ww, req.WithContext(ctx))

			reqLogger.Info().
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(start)).
				Msg("request served")
		})
	}
}
