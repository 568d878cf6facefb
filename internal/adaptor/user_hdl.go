package adaptor

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kikao-backend/internal/dto/request"
	"kikao-backend/internal/usecase"
	"kikao-backend/pkg/utils"
)

type UserHandler struct {
	svc usecase.UserService
	log *zap.Logger
}

func NewUserHandler(svc usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		svc: svc,
		log: log.With(zap.String("handler", "user")),
	}
}

// ListingAuthor exposes the public profile of a listing's owner.
func (h *UserHandler) ListingAuthor(w http.ResponseWriter, r *http.Request) {
	var req request.ListingAuthor
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	author, err := h.svc.GetListingAuthor(r.Context(), uuid.MustParse(req.ListingID))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Successfully fetched listing author!", author)
}

func (h *UserHandler) AuthorListings(w http.ResponseWriter, r *http.Request) {
	var req request.AuthorListings
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	listings, err := h.svc.GetUserListings(r.Context(), uuid.MustParse(req.UserID))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Succesfully retrieved listings!", listings)
}
