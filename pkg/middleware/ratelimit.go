package middleware

import (
	"net/http"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"kikao-backend/pkg/apperrors"
	"kikao-backend/pkg/utils"
)

const rateLimitMessage = "Hold your horses! You're sending too many requests. Give it a minute and try again, or we might call in the cavalry!"

// RateLimit throttles requests per client IP across the whole API. Over-limit
// requests get the 429 error envelope.
func RateLimit(cfg utils.RateLimitConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.Requests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", r.RemoteAddr),
				zap.String("path", r.URL.Path),
			)
			utils.ResponseError(w, http.StatusTooManyRequests, rateLimitMessage, apperrors.KindAPIError, nil)
		}),
	)
}
