package adaptor

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"kikao-backend/pkg/utils"
)

type HealthHandler struct {
	log *zap.Logger
}

func NewHealthHandler(log *zap.Logger) *HealthHandler {
	return &HealthHandler{log: log.With(zap.String("handler", "health"))}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "All systems are go!", map[string]any{
		"apiVersion": "/api/v1/",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}
