package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/pkg/database"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByCheckoutRequestID resolves the reconciliation key carried by the
	// provider's asynchronous callback. Returns (nil, nil) when no payment
	// matches.
	FindByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*entity.Payment, error)

	FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int, status *entity.PaymentStatus) ([]*entity.Payment, error)

	// Reconcile applies the callback outcome to the pending payment matched
	// by checkout request ID and returns the updated row. The UPDATE only
	// matches rows still pending, so two concurrent deliveries of the same
	// callback cannot both settle the payment; the loser gets (nil, nil).
	Reconcile(ctx context.Context, checkoutRequestID string, rec entity.PaymentReconciliation) (*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `
	id, user_id, phone_number, amount, status,
	merchant_request_id, checkout_request_id, response_code, response_description, customer_message,
	transaction_id, result_code, result_description, mpesa_receipt_number, transaction_date,
	created_at, updated_at
`

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.PhoneNumber,
		&p.Amount,
		&p.Status,
		&p.MerchantRequestID,
		&p.CheckoutRequestID,
		&p.ResponseCode,
		&p.ResponseDescription,
		&p.CustomerMessage,
		&p.TransactionID,
		&p.ResultCode,
		&p.ResultDescription,
		&p.MpesaReceiptNumber,
		&p.TransactionDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, user_id, phone_number, amount, status,
			merchant_request_id, checkout_request_id, response_code, response_description, customer_message,
			result_code, result_description, transaction_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.UserID,
		payment.PhoneNumber,
		payment.Amount,
		payment.Status,
		payment.MerchantRequestID,
		payment.CheckoutRequestID,
		payment.ResponseCode,
		payment.ResponseDescription,
		payment.CustomerMessage,
		payment.ResultCode,
		payment.ResultDescription,
		payment.TransactionDate,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("checkout_request_id", payment.CheckoutRequestID),
		)
		return fmt.Errorf("create payment %s: %w", payment.CheckoutRequestID, err)
	}

	r.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("checkout_request_id", payment.CheckoutRequestID),
	)
	return nil
}

func (r *paymentRepository) FindByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE checkout_request_id = $1`

	payment, err := scanPayment(r.db.QueryRow(ctx, query, checkoutRequestID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by checkout request ID",
			zap.Error(err),
			zap.String("checkout_request_id", checkoutRequestID),
		)
		return nil, fmt.Errorf("find payment by checkout request ID %s: %w", checkoutRequestID, err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1`

	payment, err := scanPayment(r.db.QueryRow(ctx, query, transactionID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by transaction ID",
			zap.Error(err),
			zap.String("transaction_id", transactionID),
		)
		return nil, fmt.Errorf("find payment by transaction ID %s: %w", transactionID, err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int, status *entity.PaymentStatus) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1`
	args := []any{userID}

	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find payments by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find payments by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) Reconcile(ctx context.Context, checkoutRequestID string, rec entity.PaymentReconciliation) (*entity.Payment, error) {
	// The receipt number doubles as the transaction id. Failed payments
	// carry no receipt; NULLIF keeps those columns NULL. The status guard
	// makes settling atomic: a row can leave pending exactly once.
	query := `
		UPDATE payments
		SET status = $2,
			result_code = $3,
			result_description = $4,
			mpesa_receipt_number = NULLIF($5, ''),
			transaction_id = COALESCE(NULLIF($5, ''), transaction_id),
			transaction_date = $6,
			updated_at = now()
		WHERE checkout_request_id = $1 AND status = 'pending'
		RETURNING ` + paymentColumns

	payment, err := scanPayment(r.db.QueryRow(ctx, query,
		checkoutRequestID,
		rec.Status,
		rec.ResultCode,
		rec.ResultDescription,
		rec.MpesaReceiptNumber,
		rec.TransactionDate,
	))
	if err == pgx.ErrNoRows {
		r.log.Warn("Callback matched no pending payment",
			zap.String("checkout_request_id", checkoutRequestID),
		)
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to reconcile payment",
			zap.Error(err),
			zap.String("checkout_request_id", checkoutRequestID),
		)
		return nil, fmt.Errorf("reconcile payment %s: %w", checkoutRequestID, err)
	}

	r.log.Info("Payment reconciled",
		zap.String("payment_id", payment.ID.String()),
		zap.String("status", string(payment.Status)),
	)
	return payment, nil
}
