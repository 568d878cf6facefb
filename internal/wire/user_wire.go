package wire

import (
	"github.com/go-chi/chi/v5"

	"kikao-backend/internal/adaptor"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/v1/listing/author - Public profile of a listing's owner
	r.Post("/listing/author", userHandler.ListingAuthor)

	// POST /api/v1/author/listings - Listings belonging to a given user
	r.Post("/author/listings", userHandler.AuthorListings)
}
