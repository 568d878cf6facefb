package adaptor

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kikao-backend/internal/dto/request"
	"kikao-backend/internal/usecase"
	"kikao-backend/pkg/utils"
)

// A create request carries at most this many listing_images parts.
const maxListingImages = 8

type ListingHandler struct {
	svc       usecase.ListingService
	maxUpload int64
	log       *zap.Logger
}

func NewListingHandler(svc usecase.ListingService, maxUpload int64, log *zap.Logger) *ListingHandler {
	return &ListingHandler{
		svc:       svc,
		maxUpload: maxUpload,
		log:       log.With(zap.String("handler", "listing")),
	}
}

// Create handles the multipart listing-creation form: up to 8 listing_images
// parts plus the flat form fields for the listing, its rate and compartment.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required!")
		return
	}

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart body!", nil)
		return
	}

	files := r.MultipartForm.File["listing_images"]
	if len(files) == 0 {
		utils.ResponseBadRequest(w, "Please upload some images with the data!", nil)
		return
	}
	if len(files) > maxListingImages {
		utils.ResponseBadRequest(w, "A listing can carry at most 8 images!", nil)
		return
	}

	images := make([]usecase.UploadedImage, 0, len(files))
	for _, fh := range files {
		img, err := readImagePart(fh)
		if err != nil {
			utils.ResponseBadRequest(w, "Listing images must be jpeg or png!", nil)
			return
		}
		images = append(images, *img)
	}

	req := request.CreateListing{
		Name:              r.FormValue("name"),
		Location:          r.FormValue("location"),
		County:            r.FormValue("county"),
		Status:            r.FormValue("status"),
		YearBuilt:         r.FormValue("yearBuilt"),
		Description:       r.FormValue("description"),
		Size:              r.FormValue("size"),
		Price:             utils.ParseInt(r.FormValue("price"), 0),
		Duration:          r.FormValue("duration"),
		Bedrooms:          utils.ParseInt(r.FormValue("bedrooms"), 0),
		TotalRooms:        r.FormValue("totalrooms"),
		WashRooms:         utils.ParseInt(r.FormValue("washrooms"), 0),
		Parking:           parseBool(r.FormValue("parking")),
		RoomNumber:        parseBool(r.FormValue("roomnumber")),
		Security:          parseBool(r.FormValue("security")),
		GarbageCollection: parseBool(r.FormValue("garbagecollection")),
		Wifi:              parseBool(r.FormValue("wifi")),
	}
	if !validateRequest(w, &req) {
		return
	}

	listing, err := h.svc.Create(r.Context(), callerID, &req, images)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Successful", listing)
}

func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required!")
		return
	}

	var req request.UpdateListing
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	listing, err := h.svc.Update(r.Context(), callerID, &req)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Listing successfully updated", listing)
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required!")
		return
	}

	var req request.DeleteListing
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	deleted, err := h.svc.Delete(r.Context(), callerID, uuid.MustParse(req.ListingID))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Successfully deleted listing!", deleted)
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	var req request.GetListing
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	listing, err := h.svc.Get(r.Context(), uuid.MustParse(req.ID))
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Succesfully retrieved listing!", listing)
}

func (h *ListingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	listings, err := h.svc.GetAll(r.Context())
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Succesfully retrieved listings!", listings)
}

func (h *ListingHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var req request.FilterListings
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req.Filters) {
		return
	}

	listings, err := h.svc.Filter(r.Context(), req.Filters)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Succesfully retrieved listing!", listings)
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}
