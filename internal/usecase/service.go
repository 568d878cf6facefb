package usecase

import (
	"go.uber.org/zap"

	"kikao-backend/internal/data/repository"
	"kikao-backend/pkg/utils"
)

// Service bundles all use cases for wiring.
type Service struct {
	Auth     AuthService
	User     UserService
	Listing  ListingService
	Bookmark BookmarkService
	Review   ReviewService
	Payment  PaymentService
	Describe DescriptionService
}

// Deps are the collaborators the services depend on besides the repository.
type Deps struct {
	Repo      *repository.Repository
	Google    GoogleVerifier
	Gateway   PaymentGateway
	Images    ImageStore
	Notifier  Notifier
	Generator DescriptionGenerator
	JWT       utils.JWTConfig
	Log       *zap.Logger
}

func NewService(d Deps) *Service {
	return &Service{
		Auth:     NewAuthService(d.Repo, d.Google, d.Images, d.Notifier, d.JWT, d.Log),
		User:     NewUserService(d.Repo, d.Log),
		Listing:  NewListingService(d.Repo, d.Images, d.Log),
		Bookmark: NewBookmarkService(d.Repo, d.Log),
		Review:   NewReviewService(d.Repo, d.Log),
		Payment:  NewPaymentService(d.Repo, d.Gateway, d.Log),
		Describe: NewDescriptionService(d.Generator, d.Log),
	}
}
