package wire

import (
	"context"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"kikao-backend/internal/adaptor"
	"kikao-backend/internal/data/repository"
	"kikao-backend/internal/usecase"
	"kikao-backend/pkg/googleauth"
	"kikao-backend/pkg/imagestore"
	"kikao-backend/pkg/mailer"
	"kikao-backend/pkg/middleware"
	"kikao-backend/pkg/mpesa"
	"kikao-backend/pkg/openai"
	"kikao-backend/pkg/utils"
)

// App holds the wired router and the resources that need closing on
// shutdown.
type App struct {
	Router *chi.Mux
	Images *imagestore.BucketStore
}

func (a *App) Close() error {
	return a.Images.Close()
}

// Wiring builds every collaborator, service and handler and mounts the
// routes.
func Wiring(ctx context.Context, repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	images, err := imagestore.New(ctx, config.Storage, logger)
	if err != nil {
		return nil, err
	}

	service := usecase.NewService(usecase.Deps{
		Repo:      repo,
		Google:    googleauth.NewVerifier(config.Google),
		Gateway:   mpesa.NewClient(config.Mpesa, logger),
		Images:    images,
		Notifier:  mailer.New(config.Email, logger),
		Generator: openai.NewClient(config.OpenAI, logger),
		JWT:       config.JWT,
		Log:       logger,
	})

	handler := adaptor.NewHandler(service, config.Storage.MaxUploadBytes, logger)
	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
		Images: images,
	}, nil
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(config.RateLimit, logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Everything lives under one versioned prefix.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.Health.Check)

		wireAuth(r, handler.Auth, config, logger)
		wireUser(r, handler.User)
		wireListing(r, handler.Listing, config, logger)
		wireBookmark(r, handler.Bookmark, config, logger)
		wireReview(r, handler.Review, config, logger)
		wirePayment(r, handler.Payment, config, logger)
		wireDescribe(r, handler.Describe)
	})

	return r
}
