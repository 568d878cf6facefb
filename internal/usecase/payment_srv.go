package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/internal/data/repository"
	"kikao-backend/internal/dto/request"
	"kikao-backend/internal/dto/response"
	"kikao-backend/pkg/apperrors"
	"kikao-backend/pkg/mpesa"
	"kikao-backend/pkg/utils"
)

type PaymentService interface {
	// Process pushes an STK prompt to the customer's phone and records the
	// payment as pending with the provider's synchronous identifiers.
	Process(ctx context.Context, callerID uuid.UUID, req *request.ProcessPayment) (*response.Payment, error)

	// UpdateStatus applies the provider's asynchronous callback to the
	// payment matched by checkout request ID. A repeat callback against an
	// already-settled payment is a no-op returning the current row.
	UpdateStatus(ctx context.Context, cb *mpesa.StkCallback) (*response.Payment, error)

	UserPayments(ctx context.Context, callerID uuid.UUID, limit, offset int, status *entity.PaymentStatus) ([]*response.Payment, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*response.Payment, error)
}

type paymentService struct {
	repo    *repository.Repository
	gateway PaymentGateway
	log     *zap.Logger
}

func NewPaymentService(repo *repository.Repository, gateway PaymentGateway, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:    repo,
		gateway: gateway,
		log:     log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) Process(ctx context.Context, callerID uuid.UUID, req *request.ProcessPayment) (*response.Payment, error) {
	accountRef := utils.GenerateAccountRef()

	push, err := s.gateway.STKPush(ctx, req.PhoneNumber, req.Amount, accountRef)
	if err != nil {
		s.log.Error("STK push failed",
			zap.Error(err),
			zap.String("user_id", callerID.String()),
		)
		return nil, apperrors.Generic("Payment initiation failed!", err)
	}

	now := time.Now()
	payment := &entity.Payment{
		Base:                entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:              callerID,
		PhoneNumber:         req.PhoneNumber,
		Amount:              req.Amount,
		Status:              entity.PaymentStatusPending,
		MerchantRequestID:   push.MerchantRequestID,
		CheckoutRequestID:   push.CheckoutRequestID,
		ResponseCode:        push.ResponseCode,
		ResponseDescription: push.ResponseDescription,
		CustomerMessage:     push.CustomerMessage,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.log.Info("Payment initiated",
		zap.String("payment_id", payment.ID.String()),
		zap.String("checkout_request_id", payment.CheckoutRequestID),
		zap.Int("amount", req.Amount),
	)
	return response.FromPayment(payment), nil
}

func (s *paymentService) UpdateStatus(ctx context.Context, cb *mpesa.StkCallback) (*response.Payment, error) {
	existing, err := s.repo.Payment.FindByCheckoutRequestID(ctx, cb.CheckoutRequestID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.UpdateFailed("Failed to update payment with CheckoutRequestID %s.", cb.CheckoutRequestID)
	}

	// Mobile-money webhooks retry on timeout; a payment that already
	// settled must not be flipped again.
	if existing.Status.Terminal() {
		s.log.Info("Duplicate callback ignored",
			zap.String("checkout_request_id", cb.CheckoutRequestID),
			zap.String("status", string(existing.Status)),
		)
		return response.FromPayment(existing), nil
	}

	status := entity.PaymentStatusFailed
	if cb.Succeeded() {
		status = entity.PaymentStatusCompleted
	}

	fields := cb.Fields()
	payment, err := s.repo.Payment.Reconcile(ctx, cb.CheckoutRequestID, entity.PaymentReconciliation{
		Status:             status,
		ResultCode:         strconv.Itoa(cb.ResultCode),
		ResultDescription:  cb.ResultDesc,
		MpesaReceiptNumber: fields.MpesaReceiptNumber,
		TransactionDate:    fields.TransactionDate,
	})
	if err != nil {
		return nil, err
	}
	if payment == nil {
		// A concurrent delivery of the same callback settled the row
		// between our read and the update. Answer with what it wrote.
		settled, err := s.repo.Payment.FindByCheckoutRequestID(ctx, cb.CheckoutRequestID)
		if err != nil {
			return nil, err
		}
		if settled == nil {
			return nil, apperrors.UpdateFailed("Failed to update payment with CheckoutRequestID %s.", cb.CheckoutRequestID)
		}
		return response.FromPayment(settled), nil
	}

	return response.FromPayment(payment), nil
}

func (s *paymentService) UserPayments(ctx context.Context, callerID uuid.UUID, limit, offset int, status *entity.PaymentStatus) ([]*response.Payment, error) {
	payments, err := s.repo.Payment.FindByUserID(ctx, callerID, limit, offset, status)
	if err != nil {
		return nil, err
	}
	return response.FromPayments(payments), nil
}

func (s *paymentService) FindByTransactionID(ctx context.Context, transactionID string) (*response.Payment, error) {
	payment, err := s.repo.Payment.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperrors.NotFound("Transaction with ID %s not found!", transactionID)
	}
	return response.FromPayment(payment), nil
}
