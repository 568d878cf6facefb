package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// statusRecorder remembers the status code and body size a handler wrote,
// which http.ResponseWriter does not expose.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.size += n
	return n, err
}

// Logger writes one structured line per request. Server-side failures log
// at error level, client mistakes at warn, the rest at info.
func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Int("response_bytes", rec.size),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr),
			}

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("HTTP request", fields...)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("HTTP request", fields...)
			default:
				logger.Info("HTTP request", fields...)
			}
		})
	}
}
