package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"kikao-backend/internal/usecase"
	"kikao-backend/pkg/utils"
)

// Handler bundles all HTTP handlers for wiring.
type Handler struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	User     *UserHandler
	Listing  *ListingHandler
	Bookmark *BookmarkHandler
	Review   *ReviewHandler
	Payment  *PaymentHandler
	Describe *DescribeHandler
}

func NewHandler(svc *usecase.Service, maxUploadBytes int64, log *zap.Logger) *Handler {
	return &Handler{
		Health:   NewHealthHandler(log),
		Auth:     NewAuthHandler(svc.Auth, maxUploadBytes, log),
		User:     NewUserHandler(svc.User, log),
		Listing:  NewListingHandler(svc.Listing, maxUploadBytes, log),
		Bookmark: NewBookmarkHandler(svc.Bookmark, log),
		Review:   NewReviewHandler(svc.Review, log),
		Payment:  NewPaymentHandler(svc.Payment, log),
		Describe: NewDescribeHandler(svc.Describe, log),
	}
}

// decodeJSON parses the request body into dst, answering 400 itself on
// malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body!", nil)
		return false
	}
	return true
}

// validateRequest runs struct validation and answers 422 with field errors
// on failure.
func validateRequest(w http.ResponseWriter, data any) bool {
	if errs := utils.ValidateStruct(data); errs != nil {
		utils.ResponseValidationFailed(w, "Validation failed!", errs)
		return false
	}
	return true
}

var errUnsupportedImage = errors.New("only jpeg and png images are allowed")

// Only raster images a browser can render inline are accepted for upload.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// readImagePart buffers one multipart file part, rejecting non-image types.
func readImagePart(fh *multipart.FileHeader) (*usecase.UploadedImage, error) {
	contentType := fh.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageTypes[contentType] || !allowedImageExts[ext] {
		return nil, errUnsupportedImage
	}

	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &usecase.UploadedImage{
		Filename:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
