package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/pkg/apperrors"
	"kikao-backend/pkg/database"
)

type ListingRepository interface {
	// CreateAggregate inserts a listing with its rate and compartment in one
	// transaction. A listing must never exist without both children.
	CreateAggregate(ctx context.Context, listing *entity.Listing, rate *entity.Rate, comp *entity.Compartment) (*entity.ListingAggregate, error)

	// UpdateAggregate applies a partial update to all three tables in one
	// transaction. The referenced rate and compartment must belong to the
	// listing being updated.
	UpdateAggregate(ctx context.Context, upd *entity.ListingUpdate) (*entity.ListingAggregate, error)

	// Delete removes the listing and all dependent rows (rate, compartment,
	// bookmarks, reviews) in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.ListingAggregate, error)
	FindAll(ctx context.Context) ([]*entity.ListingAggregate, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ListingAggregate, error)
	Filter(ctx context.Context, filters entity.ListingFilters) ([]*entity.ListingAggregate, error)
}

type listingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewListingRepository(db database.PgxIface, log *zap.Logger) ListingRepository {
	return &listingRepository{
		db:  db,
		log: log.With(zap.String("repository", "listing")),
	}
}

// aggregateColumns joins listings with their one rate and one compartment.
// Inner joins: the write path guarantees both children exist.
const aggregateColumns = `
	l.id, l.user_id, l.name, l.location, l.county, l.status, l.year_built,
	l.description, l.images, l.size, l.created_at, l.updated_at,
	r.id, r.listing_id, r.price, r.duration, r.country_code, r.created_at, r.updated_at,
	c.id, c.listing_id, c.bedrooms, c.total_rooms, c.wash_rooms, c.parking,
	c.room_number, c.security, c.garbage_collection, c.wifi, c.created_at, c.updated_at
`

const aggregateFrom = `
	FROM listings l
	INNER JOIN rates r ON r.listing_id = l.id
	INNER JOIN compartments c ON c.listing_id = l.id
`

func scanAggregate(row pgx.Row) (*entity.ListingAggregate, error) {
	var agg entity.ListingAggregate
	err := row.Scan(
		&agg.Listing.ID,
		&agg.Listing.UserID,
		&agg.Listing.Name,
		&agg.Listing.Location,
		&agg.Listing.County,
		&agg.Listing.Status,
		&agg.Listing.YearBuilt,
		&agg.Listing.Description,
		&agg.Listing.Images,
		&agg.Listing.Size,
		&agg.Listing.CreatedAt,
		&agg.Listing.UpdatedAt,
		&agg.Rate.ID,
		&agg.Rate.ListingID,
		&agg.Rate.Price,
		&agg.Rate.Duration,
		&agg.Rate.CountryCode,
		&agg.Rate.CreatedAt,
		&agg.Rate.UpdatedAt,
		&agg.Compartment.ID,
		&agg.Compartment.ListingID,
		&agg.Compartment.Bedrooms,
		&agg.Compartment.TotalRooms,
		&agg.Compartment.WashRooms,
		&agg.Compartment.Parking,
		&agg.Compartment.RoomNumber,
		&agg.Compartment.Security,
		&agg.Compartment.GarbageCollection,
		&agg.Compartment.Wifi,
		&agg.Compartment.CreatedAt,
		&agg.Compartment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *listingRepository) CreateAggregate(ctx context.Context, listing *entity.Listing, rate *entity.Rate, comp *entity.Compartment) (*entity.ListingAggregate, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin create transaction", zap.Error(err))
		return nil, fmt.Errorf("begin create listing transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	listingQuery := `
		INSERT INTO listings (id, user_id, name, location, county, status, year_built, description, images, size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	tag, err := tx.Exec(ctx, listingQuery,
		listing.ID,
		listing.UserID,
		listing.Name,
		listing.Location,
		listing.County,
		listing.Status,
		listing.YearBuilt,
		listing.Description,
		listing.Images,
		listing.Size,
		listing.CreatedAt,
		listing.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert listing",
			zap.Error(err),
			zap.String("name", listing.Name),
			zap.String("user_id", listing.UserID.String()),
		)
		return nil, fmt.Errorf("insert listing %s: %w", listing.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.Generic("Listing creation was not successful!", nil)
	}

	// Children take the freshly inserted listing id.
	rate.ListingID = listing.ID
	comp.ListingID = listing.ID

	rateQuery := `
		INSERT INTO rates (id, listing_id, price, duration, country_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	tag, err = tx.Exec(ctx, rateQuery,
		rate.ID,
		rate.ListingID,
		rate.Price,
		rate.Duration,
		rate.CountryCode,
		rate.CreatedAt,
		rate.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert rate",
			zap.Error(err),
			zap.String("listing_id", listing.ID.String()),
		)
		return nil, fmt.Errorf("insert rate for listing %s: %w", listing.ID.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.Generic("Rate creation was not successful!", nil)
	}

	compQuery := `
		INSERT INTO compartments (id, listing_id, bedrooms, total_rooms, wash_rooms, parking, room_number, security, garbage_collection, wifi, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	tag, err = tx.Exec(ctx, compQuery,
		comp.ID,
		comp.ListingID,
		comp.Bedrooms,
		comp.TotalRooms,
		comp.WashRooms,
		comp.Parking,
		comp.RoomNumber,
		comp.Security,
		comp.GarbageCollection,
		comp.Wifi,
		comp.CreatedAt,
		comp.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert compartment",
			zap.Error(err),
			zap.String("listing_id", listing.ID.String()),
		)
		return nil, fmt.Errorf("insert compartment for listing %s: %w", listing.ID.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.Generic("Compartment creation was not successful!", nil)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit create transaction",
			zap.Error(err),
			zap.String("listing_id", listing.ID.String()),
		)
		return nil, fmt.Errorf("commit create listing transaction: %w", err)
	}

	return &entity.ListingAggregate{
		Listing:     *listing,
		Rate:        *rate,
		Compartment: *comp,
	}, nil
}

// setClause accumulates dynamic SET columns for a partial update.
type setClause struct {
	cols []string
	args []any
}

func (s *setClause) add(col string, val any) {
	s.args = append(s.args, val)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(s.args)))
}

// sql renders "UPDATE <table> SET ... WHERE id = $n" and returns the full
// argument list with the row id appended.
func (s *setClause) sql(table string, id uuid.UUID) (string, []any) {
	args := append(s.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(s.cols, ", "), len(args))
	return query, args
}

func (r *listingRepository) UpdateAggregate(ctx context.Context, upd *entity.ListingUpdate) (*entity.ListingAggregate, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin update transaction", zap.Error(err))
		return nil, fmt.Errorf("begin update listing transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// The referenced rate and compartment rows must belong to the listing
	// being updated. This stops a caller from redirecting another listing's
	// children onto this one.
	var rateListingID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT listing_id FROM rates WHERE id = $1`, upd.RateID).Scan(&rateListingID)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NotFound("Rate with ID %s not found!", upd.RateID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("look up rate %s owner: %w", upd.RateID.String(), err)
	}
	if rateListingID != upd.ListingID {
		r.log.Warn("Rate does not belong to listing",
			zap.String("rate_id", upd.RateID.String()),
			zap.String("listing_id", upd.ListingID.String()),
		)
		return nil, apperrors.Unauthorized("You can only update a rate that you created!")
	}

	var compListingID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT listing_id FROM compartments WHERE id = $1`, upd.CompartmentID).Scan(&compListingID)
	if err == pgx.ErrNoRows {
		return nil, apperrors.NotFound("Compartment with ID %s not found!", upd.CompartmentID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("look up compartment %s owner: %w", upd.CompartmentID.String(), err)
	}
	if compListingID != upd.ListingID {
		r.log.Warn("Compartment does not belong to listing",
			zap.String("compartment_id", upd.CompartmentID.String()),
			zap.String("listing_id", upd.ListingID.String()),
		)
		return nil, apperrors.Unauthorized("You can only update a compartment that you created!")
	}

	listingSet := &setClause{}
	if upd.Name != nil {
		listingSet.add("name", *upd.Name)
	}
	if upd.Location != nil {
		listingSet.add("location", *upd.Location)
	}
	if upd.County != nil {
		listingSet.add("county", *upd.County)
	}
	if upd.Status != nil {
		listingSet.add("status", *upd.Status)
	}
	if upd.YearBuilt != nil {
		listingSet.add("year_built", *upd.YearBuilt)
	}
	if upd.Description != nil {
		listingSet.add("description", *upd.Description)
	}
	if upd.Size != nil {
		listingSet.add("size", *upd.Size)
	}
	listingSet.add("updated_at", time.Now())

	rateSet := &setClause{}
	if upd.Price != nil {
		rateSet.add("price", *upd.Price)
	}
	if upd.Duration != nil {
		rateSet.add("duration", *upd.Duration)
	}
	rateSet.add("updated_at", time.Now())

	compSet := &setClause{}
	if upd.Bedrooms != nil {
		compSet.add("bedrooms", *upd.Bedrooms)
	}
	if upd.TotalRooms != nil {
		compSet.add("total_rooms", *upd.TotalRooms)
	}
	if upd.WashRooms != nil {
		compSet.add("wash_rooms", *upd.WashRooms)
	}
	if upd.Parking != nil {
		compSet.add("parking", *upd.Parking)
	}
	if upd.RoomNumber != nil {
		compSet.add("room_number", *upd.RoomNumber)
	}
	if upd.Security != nil {
		compSet.add("security", *upd.Security)
	}
	if upd.GarbageCollection != nil {
		compSet.add("garbage_collection", *upd.GarbageCollection)
	}
	if upd.Wifi != nil {
		compSet.add("wifi", *upd.Wifi)
	}
	compSet.add("updated_at", time.Now())

	steps := []struct {
		table string
		set   *setClause
		id    uuid.UUID
	}{
		{"listings", listingSet, upd.ListingID},
		{"rates", rateSet, upd.RateID},
		{"compartments", compSet, upd.CompartmentID},
	}

	for _, step := range steps {
		query, args := step.set.sql(step.table, step.id)
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			r.log.Error("Failed to update aggregate table",
				zap.Error(err),
				zap.String("table", step.table),
				zap.String("id", step.id.String()),
			)
			return nil, fmt.Errorf("update %s %s: %w", step.table, step.id.String(), err)
		}
		if tag.RowsAffected() == 0 {
			return nil, apperrors.UpdateFailed("No changes were made to %s with ID %s.", step.table, step.id.String())
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit update transaction",
			zap.Error(err),
			zap.String("listing_id", upd.ListingID.String()),
		)
		return nil, fmt.Errorf("commit update listing transaction: %w", err)
	}

	// Read back the fully re-joined aggregate after commit.
	return r.FindByID(ctx, upd.ListingID)
}

func (r *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin delete transaction", zap.Error(err))
		return fmt.Errorf("begin delete listing transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Dependents go first, then the listing row itself.
	dependents := []string{
		`DELETE FROM reviews WHERE listing_id = $1`,
		`DELETE FROM bookmarks WHERE listing_id = $1`,
		`DELETE FROM rates WHERE listing_id = $1`,
		`DELETE FROM compartments WHERE listing_id = $1`,
	}

	for _, query := range dependents {
		if _, err := tx.Exec(ctx, query, id); err != nil {
			r.log.Error("Failed to delete listing dependents",
				zap.Error(err),
				zap.String("listing_id", id.String()),
			)
			return fmt.Errorf("delete dependents of listing %s: %w", id.String(), err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete listing",
			zap.Error(err),
			zap.String("listing_id", id.String()),
		)
		return fmt.Errorf("delete listing %s: %w", id.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.DeleteFailed("Listing deletion was not successful.")
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit delete transaction",
			zap.Error(err),
			zap.String("listing_id", id.String()),
		)
		return fmt.Errorf("commit delete listing transaction: %w", err)
	}

	r.log.Info("Listing deleted", zap.String("listing_id", id.String()))
	return nil
}

func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ListingAggregate, error) {
	query := `SELECT ` + aggregateColumns + aggregateFrom + ` WHERE l.id = $1`

	agg, err := scanAggregate(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find listing by ID",
			zap.Error(err),
			zap.String("listing_id", id.String()),
		)
		return nil, fmt.Errorf("find listing by ID %s: %w", id.String(), err)
	}

	return agg, nil
}

func (r *listingRepository) FindAll(ctx context.Context) ([]*entity.ListingAggregate, error) {
	query := `SELECT ` + aggregateColumns + aggregateFrom + ` ORDER BY l.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all listings", zap.Error(err))
		return nil, fmt.Errorf("find all listings: %w", err)
	}
	defer rows.Close()

	return collectAggregates(rows)
}

func (r *listingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ListingAggregate, error) {
	query := `SELECT ` + aggregateColumns + aggregateFrom + ` WHERE l.user_id = $1 ORDER BY l.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find listings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find listings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectAggregates(rows)
}

func (r *listingRepository) Filter(ctx context.Context, filters entity.ListingFilters) ([]*entity.ListingAggregate, error) {
	// All filters are optional and conjunctive; an absent filter means no
	// constraint on that attribute.
	var conditions []string
	var args []any

	if filters.Price != nil {
		args = append(args, *filters.Price)
		conditions = append(conditions, fmt.Sprintf("r.price = $%d", len(args)))
	}
	if filters.County != nil {
		args = append(args, *filters.County)
		conditions = append(conditions, fmt.Sprintf("l.county = $%d", len(args)))
	}
	if filters.Size != nil {
		args = append(args, *filters.Size)
		conditions = append(conditions, fmt.Sprintf("l.size = $%d", len(args)))
	}

	query := `SELECT ` + aggregateColumns + aggregateFrom
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY l.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to filter listings", zap.Error(err))
		return nil, fmt.Errorf("filter listings: %w", err)
	}
	defer rows.Close()

	return collectAggregates(rows)
}

func collectAggregates(rows pgx.Rows) ([]*entity.ListingAggregate, error) {
	var aggs []*entity.ListingAggregate
	for rows.Next() {
		agg, err := scanAggregate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing row: %w", err)
		}
		aggs = append(aggs, agg)
	}
	return aggs, rows.Err()
}
