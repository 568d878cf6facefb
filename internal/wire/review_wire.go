package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"kikao-backend/internal/adaptor"
	"kikao-backend/pkg/middleware"
	"kikao-backend/pkg/utils"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/v1/author/reviews - Reviews on a given listing
	r.Post("/author/reviews", reviewHandler.ListingReviews)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/v1/reviews - Review a listing
		r.Post("/reviews", reviewHandler.Create)

		// DELETE /api/v1/reviews - Remove own review
		r.Delete("/reviews", reviewHandler.Delete)
	})
}
