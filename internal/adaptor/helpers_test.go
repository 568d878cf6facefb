package adaptor

import (
	"net/http"

	"github.com/google/uuid"

	"kikao-backend/pkg/utils"
)

// requestWithUserID stamps the request context the way the auth middleware
// does after verifying a bearer token.
func requestWithUserID(r *http.Request, id uuid.UUID) *http.Request {
	ctx := utils.SetUserContext(r.Context(), utils.AuthUser{
		ID:       id,
		Username: "janedoe",
		Email:    "jane@kikao.ke",
	})
	return r.WithContext(ctx)
}
