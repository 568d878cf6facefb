package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"kikao-backend/internal/dto/request"
	"kikao-backend/internal/usecase"
	"kikao-backend/pkg/utils"
)

type DescribeHandler struct {
	svc usecase.DescriptionService
	log *zap.Logger
}

func NewDescribeHandler(svc usecase.DescriptionService, log *zap.Logger) *DescribeHandler {
	return &DescribeHandler{
		svc: svc,
		log: log.With(zap.String("handler", "describe")),
	}
}

func (h *DescribeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateDescription
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	description, err := h.svc.Generate(r.Context(), req.PromptText)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Generated description successfully", description)
}
