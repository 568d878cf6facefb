package repository

import (
	"go.uber.org/zap"

	"kikao-backend/pkg/database"
)

// Repository bundles every data-access interface behind one constructor so
// wiring only ever hands out a single value.
type Repository struct {
	User     UserRepository
	Listing  ListingRepository
	Bookmark BookmarkRepository
	Review   ReviewRepository
	Payment  PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Listing:  NewListingRepository(db, log),
		Bookmark: NewBookmarkRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
	}
}
