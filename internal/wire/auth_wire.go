package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"kikao-backend/internal/adaptor"
	"kikao-backend/pkg/middleware"
	"kikao-backend/pkg/utils"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/v1/auth/google - Exchange a Google ID token for an app JWT
	r.Post("/auth/google", authHandler.GoogleLogin)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/v1/register/business - Fill in the business profile (multipart)
		r.Post("/register/business", authHandler.RegisterBusiness)
	})
}
