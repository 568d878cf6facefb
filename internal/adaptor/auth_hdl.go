package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"kikao-backend/internal/dto/request"
	"kikao-backend/internal/usecase"
	"kikao-backend/pkg/utils"
)

type AuthHandler struct {
	svc       usecase.AuthService
	maxUpload int64
	log       *zap.Logger
}

func NewAuthHandler(svc usecase.AuthService, maxUpload int64, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		svc:       svc,
		maxUpload: maxUpload,
		log:       log.With(zap.String("handler", "auth")),
	}
}

// GoogleLogin exchanges a Google ID token for an app JWT, provisioning the
// user on first sight.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req request.GoogleLogin
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	auth, err := h.svc.GoogleLogin(r.Context(), req.Token)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Login was successful.", auth)
}

// RegisterBusiness fills in the caller's business profile. The multipart
// body may carry one optional business_logo image part.
func (h *AuthHandler) RegisterBusiness(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required!")
		return
	}

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart body!", nil)
		return
	}

	req := request.RegisterBusiness{
		PhoneNumber:  r.FormValue("phoneNumber"),
		BusinessName: r.FormValue("businessName"),
		Location:     r.FormValue("location"),
		BusinessType: r.FormValue("businessType"),
		BusinessCity: r.FormValue("businessCity"),
	}
	if !validateRequest(w, &req) {
		return
	}

	var logo *usecase.UploadedImage
	if files := r.MultipartForm.File["business_logo"]; len(files) > 0 {
		img, err := readImagePart(files[0])
		if err != nil {
			utils.ResponseBadRequest(w, "Business logo must be a jpeg or png image!", nil)
			return
		}
		logo = img
	}

	user, err := h.svc.RegisterBusiness(r.Context(), callerID, &req, logo)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Business registered successfully!", user)
}
