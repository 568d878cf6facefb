package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/internal/data/repository"
	"kikao-backend/internal/dto/request"
	"kikao-backend/internal/dto/response"
	"kikao-backend/pkg/apperrors"
	"kikao-backend/pkg/utils"
)

// Defaults assigned to users provisioned from an OAuth handshake. The
// profile forms are filled in later through the app.
const (
	defaultKikaoType = "tenant"
	defaultGender    = "non-binary"
)

type AuthService interface {
	// GoogleLogin verifies a Google ID token, provisions the user on first
	// sight and answers with a signed app token.
	GoogleLogin(ctx context.Context, rawToken string) (*response.Auth, error)

	// RegisterBusiness fills in the caller's business profile, uploading the
	// optional logo to the image store first.
	RegisterBusiness(ctx context.Context, callerID uuid.UUID, req *request.RegisterBusiness, logo *UploadedImage) (*response.User, error)
}

type authService struct {
	repo     *repository.Repository
	google   GoogleVerifier
	images   ImageStore
	notifier Notifier
	jwtCfg   utils.JWTConfig
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, google GoogleVerifier, images ImageStore, notifier Notifier, jwtCfg utils.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		google:   google,
		images:   images,
		notifier: notifier,
		jwtCfg:   jwtCfg,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) GoogleLogin(ctx context.Context, rawToken string) (*response.Auth, error) {
	profile, err := s.google.Verify(ctx, rawToken)
	if err != nil {
		s.log.Warn("Google token verification failed", zap.Error(err))
		return nil, apperrors.Unauthorized("Google token verification failed!")
	}

	user, err := s.repo.User.FindByProvider(ctx, entity.ProviderGoogle, profile.Subject)
	if err != nil {
		return nil, fmt.Errorf("look up user for google subject: %w", err)
	}

	if user == nil {
		now := time.Now()
		user = &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username:       usernameFromProfile(profile.Name, profile.Email),
			Email:          profile.Email,
			Provider:       entity.ProviderGoogle,
			ProviderUserID: profile.Subject,
			IsLinked:       true,
			KikaoType:      defaultKikaoType,
			Gender:         defaultGender,
		}
		if profile.Picture != "" {
			picture := profile.Picture
			user.ProfileImage = &picture
		}

		if err := s.repo.User.Create(ctx, user); err != nil {
			return nil, err
		}

		// Welcome email is fire and forget. A delivery failure is logged
		// and never blocks the login response.
		go func(username, email string) {
			if err := s.notifier.SendWelcome(username, email); err != nil {
				s.log.Error("Failed to send welcome email",
					zap.Error(err),
					zap.String("email", email),
				)
			}
		}(user.Username, user.Email)

		s.log.Info("User provisioned from Google sign-in",
			zap.String("user_id", user.ID.String()),
		)
	}

	token, err := utils.GenerateJWT(s.jwtCfg, user)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("sign token for user %s: %w", user.ID.String(), err)
	}

	return &response.Auth{
		Token: token,
		User:  response.FromUser(user),
	}, nil
}

func (s *authService) RegisterBusiness(ctx context.Context, callerID uuid.UUID, req *request.RegisterBusiness, logo *UploadedImage) (*response.User, error) {
	info := entity.BusinessInfo{
		PhoneNumber:      req.PhoneNumber,
		BusinessName:     req.BusinessName,
		BusinessLocation: req.Location,
		BusinessType:     req.BusinessType,
		BusinessCity:     req.BusinessCity,
	}

	if logo != nil {
		url, err := s.images.Upload(ctx, logo.Filename, logo.ContentType, bytes.NewReader(logo.Data))
		if err != nil {
			s.log.Error("Failed to upload business logo",
				zap.Error(err),
				zap.String("user_id", callerID.String()),
			)
			return nil, apperrors.Generic("Business logo upload failed!", err)
		}
		info.BusinessLogo = &url
	}

	user, err := s.repo.User.UpdateBusiness(ctx, callerID, info)
	if err != nil {
		return nil, err
	}

	s.log.Info("Business registered", zap.String("user_id", callerID.String()))
	return response.FromUser(user), nil
}

// usernameFromProfile prefers the display name and falls back to the local
// part of the email address.
func usernameFromProfile(name, email string) string {
	if name != "" {
		return name
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
