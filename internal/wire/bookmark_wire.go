package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"kikao-backend/internal/adaptor"
	"kikao-backend/pkg/middleware"
	"kikao-backend/pkg/utils"
)

func wireBookmark(
	r chi.Router,
	bookmarkHandler *adaptor.BookmarkHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/v1/listing/bookmarks - Bookmarks on a given listing
	r.Post("/listing/bookmarks", bookmarkHandler.ListingBookmarks)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/v1/bookmarks - Bookmark a listing
		r.Post("/bookmarks", bookmarkHandler.Add)

		// POST /api/v1/user/bookmarks - Caller's own bookmarks
		r.Post("/user/bookmarks", bookmarkHandler.UserBookmarks)

		// DELETE /api/v1/delete/bookmarks - Remove own bookmark
		r.Delete("/delete/bookmarks", bookmarkHandler.Delete)
	})
}
