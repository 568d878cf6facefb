package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kikao-backend/pkg/utils"
)

// Auth verifies the bearer JWT and stores the resolved identity in the
// request context. Handlers must take the acting user from the context,
// never from request body fields.
func Auth(cfg utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.VerifyJWT(cfg, parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				logger.Warn("Token carries malformed user ID",
					zap.String("user_id", claims.UserID))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), utils.AuthUser{
				ID:       userID,
				Username: claims.Username,
				Email:    claims.Email,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
