package wire

import (
	"github.com/go-chi/chi/v5"

	"kikao-backend/internal/adaptor"
)

func wireDescribe(r chi.Router, describeHandler *adaptor.DescribeHandler) {
	// POST /api/v1/description - Generate a listing description
	r.Post("/description", describeHandler.Generate)
}
