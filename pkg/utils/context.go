package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	EmailKey    contextKey = "email"
)

// AuthUser is the identity resolved from a verified bearer token. Ownership
// checks use this and never a client-supplied user id.
type AuthUser struct {
	ID       uuid.UUID
	Username string
	Email    string
}

func SetUserContext(ctx context.Context, user AuthUser) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, user.ID.String())
	ctx = context.WithValue(ctx, UsernameKey, user.Username)
	ctx = context.WithValue(ctx, EmailKey, user.Email)
	return ctx
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetUsernameFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(UsernameKey)
	if val == nil {
		return "", false
	}

	username, ok := val.(string)
	return username, ok
}
