package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"kikao-backend/internal/adaptor"
	"kikao-backend/pkg/middleware"
	"kikao-backend/pkg/utils"
)

func wireListing(
	r chi.Router,
	listingHandler *adaptor.ListingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/v1/listings - Browse all listings
	r.Get("/listings", listingHandler.GetAll)

	// POST /api/v1/user/listing - Fetch a single listing by id
	r.Post("/user/listing", listingHandler.Get)

	// POST /api/v1/sort/listings - Filter listings by price/county/size
	r.Post("/sort/listings", listingHandler.Filter)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/v1/user/listings - Create a listing (multipart with images)
		r.Post("/user/listings", listingHandler.Create)

		// PUT /api/v1/user/listings - Update own listing aggregate
		r.Put("/user/listings", listingHandler.Update)

		// DELETE /api/v1/user/listings - Delete own listing
		r.Delete("/user/listings", listingHandler.Delete)
	})
}
