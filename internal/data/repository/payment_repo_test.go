package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
)

func TestPaymentRepository_Reconcile_OnlyMatchesPendingRows(t *testing.T) {
	var capturedSQL string
	db := &fakeDB{
		queryRowFn: func(sql string, args []any) pgx.Row {
			capturedSQL = sql
			assert.Equal(t, "ws_CO_123", args[0])
			return errRow(pgx.ErrNoRows)
		},
	}
	repo := NewPaymentRepository(db, zap.NewNop())

	payment, err := repo.Reconcile(context.Background(), "ws_CO_123", entity.PaymentReconciliation{
		Status:             entity.PaymentStatusCompleted,
		ResultCode:         "0",
		MpesaReceiptNumber: "RKTQDM7W6S",
	})

	// A row that already left pending matches nothing; the caller decides
	// whether that means a duplicate delivery or an unknown checkout id.
	require.NoError(t, err)
	assert.Nil(t, payment)

	// The settle update must be guarded on the pending status, so only one
	// of two concurrent callback deliveries can flip the row.
	assert.Contains(t, capturedSQL, "status = 'pending'")
	assert.Contains(t, capturedSQL, "checkout_request_id = $1")
}
