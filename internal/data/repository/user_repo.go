package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/pkg/apperrors"
	"kikao-backend/pkg/database"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByProvider looks a user up by OAuth provider and the provider's
	// subject identifier. Returns (nil, nil) when no such user exists.
	FindByProvider(ctx context.Context, provider entity.AuthProvider, providerUserID string) (*entity.User, error)

	// UpdateBusiness fills in the business profile fields of an existing user.
	UpdateBusiness(ctx context.Context, userID uuid.UUID, info entity.BusinessInfo) (*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `
	id, username, email, profile_image, provider, provider_user_id, is_linked,
	kikao_type, gender, phone_number, business_name, business_location,
	business_type, business_city, business_logo, created_at, updated_at
`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.ProfileImage,
		&u.Provider,
		&u.ProviderUserID,
		&u.IsLinked,
		&u.KikaoType,
		&u.Gender,
		&u.PhoneNumber,
		&u.BusinessName,
		&u.BusinessLocation,
		&u.BusinessType,
		&u.BusinessCity,
		&u.BusinessLogo,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, profile_image, provider, provider_user_id, is_linked, kikao_type, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.ProfileImage,
		user.Provider,
		user.ProviderUserID,
		user.IsLinked,
		user.KikaoType,
		user.Gender,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	r.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("provider", string(user.Provider)),
	)
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (r *userRepository) FindByProvider(ctx context.Context, provider entity.AuthProvider, providerUserID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE provider = $1 AND provider_user_id = $2`

	user, err := scanUser(r.db.QueryRow(ctx, query, provider, providerUserID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by provider",
			zap.Error(err),
			zap.String("provider", string(provider)),
		)
		return nil, fmt.Errorf("find user by provider %s: %w", provider, err)
	}

	return user, nil
}

func (r *userRepository) UpdateBusiness(ctx context.Context, userID uuid.UUID, info entity.BusinessInfo) (*entity.User, error) {
	query := `
		UPDATE users
		SET phone_number = $2,
			business_name = $3,
			business_location = $4,
			business_type = $5,
			business_city = $6,
			business_logo = COALESCE($7, business_logo),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query,
		userID,
		info.PhoneNumber,
		info.BusinessName,
		info.BusinessLocation,
		info.BusinessType,
		info.BusinessCity,
		info.BusinessLogo,
	))
	if err == pgx.ErrNoRows {
		return nil, apperrors.NotFound("User with ID %s not found!", userID.String())
	}
	if err != nil {
		r.log.Error("Failed to update business info",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("update business info for user %s: %w", userID.String(), err)
	}

	r.log.Info("Business info updated", zap.String("user_id", userID.String()))
	return user, nil
}
