package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kikao-backend/internal/data/entity"
)

// JWTClaims carries the verified identity of a signed-in user.
type JWTClaims struct {
	UserID       string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Provider     string `json:"provider"`
	ProviderID   string `json:"providerId"`
	ProfileImage string `json:"profileImage,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a bearer token for an authenticated user.
func GenerateJWT(cfg JWTConfig, user *entity.User) (string, error) {
	now := time.Now()

	profileImage := ""
	if user.ProfileImage != nil {
		profileImage = *user.ProfileImage
	}

	claims := JWTClaims{
		UserID:       user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		Provider:     string(user.Provider),
		ProviderID:   user.ProviderUserID,
		ProfileImage: profileImage,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpiryHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// VerifyJWT parses and validates a bearer token string.
func VerifyJWT(cfg JWTConfig, tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
