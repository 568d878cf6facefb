package adaptor

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kikao-backend/internal/dto/request"
	"kikao-backend/internal/usecase"
	"kikao-backend/pkg/utils"
)

type ReviewHandler struct {
	svc usecase.ReviewService
	log *zap.Logger
}

func NewReviewHandler(svc usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		svc: svc,
		log: log.With(zap.String("handler", "review")),
	}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required!")
		return
	}

	var req request.CreateReview
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	review, err := h.svc.Create(r.Context(), callerID, &req)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Review saved successfully", review)
}

func (h *ReviewHandler) ListingReviews(w http.ResponseWriter, r *http.Request) {
	var req request.ListingReviews
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	reviews, err := h.svc.ListingReviews(r.Context(), uuid.MustParse(req.ListingID))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Reviews fetched successfully", reviews)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required!")
		return
	}

	var req request.DeleteReview
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	deleted, err := h.svc.Delete(r.Context(), callerID, uuid.MustParse(req.ReviewID))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", deleted)
}
