package adaptor

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kikao-backend/internal/dto/request"
	"kikao-backend/internal/usecase"
	"kikao-backend/pkg/utils"
)

type BookmarkHandler struct {
	svc usecase.BookmarkService
	log *zap.Logger
}

func NewBookmarkHandler(svc usecase.BookmarkService, log *zap.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		svc: svc,
		log: log.With(zap.String("handler", "bookmark")),
	}
}

func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required!")
		return
	}

	var req request.AddBookmark
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	bookmark, err := h.svc.Add(r.Context(), callerID, uuid.MustParse(req.ListingID))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Bookmark saved successfully", bookmark)
}

// UserBookmarks lists the caller's own bookmarks.
func (h *BookmarkHandler) UserBookmarks(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required!")
		return
	}

	bookmarks, err := h.svc.UserBookmarks(r.Context(), callerID)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bookmarks fetched successfully", bookmarks)
}

func (h *BookmarkHandler) ListingBookmarks(w http.ResponseWriter, r *http.Request) {
	var req request.ListingBookmarks
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	bookmarks, err := h.svc.ListingBookmarks(r.Context(), uuid.MustParse(req.ListingID))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bookmarks fetched successfully", bookmarks)
}

func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required!")
		return
	}

	var req request.DeleteBookmark
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	deleted, err := h.svc.Delete(r.Context(), callerID, uuid.MustParse(req.BookmarkID))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Bookmark deleted successfully", deleted)
}
