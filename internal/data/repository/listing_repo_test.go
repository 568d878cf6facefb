package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/pkg/apperrors"
)

// ownerRow scripts the child-ownership lookup to report the given listing id.
func ownerRow(listingID uuid.UUID) pgx.Row {
	return &fakeRow{scan: func(dest ...any) error {
		*(dest[0].(*uuid.UUID)) = listingID
		return nil
	}}
}

func testUpdate() *entity.ListingUpdate {
	name := "Sunset Apartments"
	return &entity.ListingUpdate{
		ListingID:     uuid.New(),
		RateID:        uuid.New(),
		CompartmentID: uuid.New(),
		Name:          &name,
	}
}

func TestListingRepository_UpdateAggregate_RejectsForeignRate(t *testing.T) {
	upd := testUpdate()
	foreignListingID := uuid.New()

	tx := &fakeTx{
		queryRowFn: func(sql string, args []any) pgx.Row {
			require.Contains(t, sql, "FROM rates")
			assert.Equal(t, []any{upd.RateID}, args)
			return ownerRow(foreignListingID)
		},
	}
	repo := NewListingRepository(&fakeDB{tx: tx}, zap.NewNop())

	_, err := repo.UpdateAggregate(context.Background(), upd)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))

	// Nothing may be written once the tamper check fails.
	assert.Empty(t, tx.execs)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestListingRepository_UpdateAggregate_RejectsForeignCompartment(t *testing.T) {
	upd := testUpdate()
	foreignListingID := uuid.New()

	tx := &fakeTx{
		queryRowFn: func(sql string, args []any) pgx.Row {
			if strings.Contains(sql, "FROM rates") {
				return ownerRow(upd.ListingID)
			}
			require.Contains(t, sql, "FROM compartments")
			return ownerRow(foreignListingID)
		},
	}
	repo := NewListingRepository(&fakeDB{tx: tx}, zap.NewNop())

	_, err := repo.UpdateAggregate(context.Background(), upd)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
	assert.Empty(t, tx.execs)
	assert.True(t, tx.rolledBack)
}

func TestListingRepository_UpdateAggregate_MissingRate(t *testing.T) {
	tx := &fakeTx{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return errRow(pgx.ErrNoRows)
		},
	}
	repo := NewListingRepository(&fakeDB{tx: tx}, zap.NewNop())

	_, err := repo.UpdateAggregate(context.Background(), testUpdate())
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.True(t, tx.rolledBack)
}

func TestListingRepository_UpdateAggregate_ZeroRowsAborts(t *testing.T) {
	upd := testUpdate()

	tx := &fakeTx{
		queryRowFn: func(sql string, args []any) pgx.Row {
			return ownerRow(upd.ListingID)
		},
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		},
	}
	repo := NewListingRepository(&fakeDB{tx: tx}, zap.NewNop())

	_, err := repo.UpdateAggregate(context.Background(), upd)
	assert.Equal(t, apperrors.KindUpdateFailed, apperrors.KindOf(err))

	// The first zero-row update aborts before the other tables are touched.
	assert.Len(t, tx.execs, 1)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func testListingAggregate() (*entity.Listing, *entity.Rate, *entity.Compartment) {
	now := time.Now()
	listing := &entity.Listing{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID: uuid.New(),
		Name:   "Sunset Apartments",
	}
	rate := &entity.Rate{Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}, Price: 25000}
	comp := &entity.Compartment{Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}, Bedrooms: 2}
	return listing, rate, comp
}

func TestListingRepository_CreateAggregate_ChildInsertFailureAborts(t *testing.T) {
	listing, rate, comp := testListingAggregate()

	tx := &fakeTx{}
	tx.execFn = func(sql string, args []any) (pgconn.CommandTag, error) {
		// The listing row lands, the rate insert reports nothing written.
		if strings.Contains(sql, "INSERT INTO listings") {
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		}
		return pgconn.NewCommandTag("INSERT 0 0"), nil
	}
	repo := NewListingRepository(&fakeDB{tx: tx}, zap.NewNop())

	_, err := repo.CreateAggregate(context.Background(), listing, rate, comp)
	assert.Equal(t, apperrors.KindAPIError, apperrors.KindOf(err))

	assert.Len(t, tx.execs, 2)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestListingRepository_CreateAggregate_CommitsAndLinksChildren(t *testing.T) {
	listing, rate, comp := testListingAggregate()

	tx := &fakeTx{
		execFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		},
	}
	repo := NewListingRepository(&fakeDB{tx: tx}, zap.NewNop())

	agg, err := repo.CreateAggregate(context.Background(), listing, rate, comp)
	require.NoError(t, err)

	assert.Len(t, tx.execs, 3)
	assert.True(t, tx.committed)
	assert.Equal(t, listing.ID, agg.Rate.ListingID)
	assert.Equal(t, listing.ID, agg.Compartment.ListingID)
}
