package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"kikao-backend/internal/adaptor"
	"kikao-backend/pkg/middleware"
	"kikao-backend/pkg/utils"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/v1/lipanampesa/success - Provider callback webhook
	r.Post("/lipanampesa/success", paymentHandler.Callback)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/v1/user/payments - Initiate an STK push
		r.Post("/user/payments", paymentHandler.Process)

		// GET /api/v1/user/payments - Caller's payment history
		r.Get("/user/payments", paymentHandler.UserPayments)

		// GET /api/v1/user/payments/{transactionId} - Look up one transaction
		r.Get("/user/payments/{transactionId}", paymentHandler.FindByTransactionID)
	})
}
