// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/MKhiriev/go-inventory-sync/models"
)

const vehiclesTable = "vehicles"

// idBatchSize bounds the IN list of bulk updates so no statement exceeds the
// driver parameter limit.
const idBatchSize = 500

// vehicleColumns is the select list matched by scanVehicle.
var vehicleColumns = []string{
	"id", "dealer_id", "source", "external_id", "vin", "stock_number",
	"year", "make", "model", "trim", "price", "asking_price", "compare_price",
	"mileage", "mpg_city", "mpg_highway", "color", "interior_color",
	"exterior_color", "transmission", "drivetrain", "fuel_type", "body_style",
	"engine", "description", "images", "videos", "features", "ai_features",
	"media", "is_active", "status", "deactivated_by", "content_hash",
	"last_synced_at", "created_at", "updated_at",
}

// vehicleRepository is the SQL implementation of [VehicleRepository]. Queries
// are built with squirrel so the same code serves Postgres and SQLite.
type vehicleRepository struct {
	*DB
	logger *logger.Logger
}

func NewVehicleRepository(db *DB, logger *logger.Logger) VehicleRepository {
	logger.Debug().Msg("creating vehicle repository")
	return &vehicleRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *vehicleRepository) ListActiveBySource(ctx context.Context, dealerID, source string) ([]models.Vehicle, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(vehicleColumns...).
		From(vehiclesTable).
		Where(sq.Eq{"dealer_id": dealerID, "source": source, "is_active": true}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.ListActiveBySource").
			Str("dealer_id", dealerID).
			Msg("failed to execute query for active vehicles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	vehicles := make([]models.Vehicle, 0, 64)
	for rows.Next() {
		vehicle, scanErr := scanVehicle(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "vehicleRepository.ListActiveBySource").
				Str("dealer_id", dealerID).
				Msg("failed to scan vehicle row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		vehicles = append(vehicles, vehicle)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.ListActiveBySource").
			Str("dealer_id", dealerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vehicles, nil
}

func (r *vehicleRepository) FindByVIN(ctx context.Context, dealerID, source, vin string) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(vehicleColumns...).
		From(vehiclesTable).
		Where(sq.Eq{"dealer_id": dealerID, "source": source, "vin": vin}).
		ToSql()
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	vehicle, err := scanVehicle(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vehicle{}, ErrVehicleNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.FindByVIN").
			Str("dealer_id", dealerID).
			Str("vin", vin).
			Msg("failed to find vehicle")
		return models.Vehicle{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return vehicle, nil
}

// Insert creates the row and fills in the generated ID. A VIN that already
// exists for the dealer and source yields [ErrVehicleConflict].
func (r *vehicleRepository) Insert(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	values := vehicleValues(vehicle)
	columns := make([]string, 0, len(values))
	args := make([]any, 0, len(values))
	for _, column := range vehicleColumns[1:] {
		columns = append(columns, column)
		args = append(args, values[column])
	}

	query, queryArgs, err := r.builder.
		Insert(vehiclesTable).
		Columns(columns...).
		Values(args...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, queryArgs...).Scan(&vehicle.ID); err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.Insert").
			Str("dealer_id", vehicle.DealerID).
			Str("vin", vehicle.VIN).
			Msg("failed to insert vehicle")
		if r.classify(err) == Conflict {
			return models.Vehicle{}, ErrVehicleConflict
		}
		return models.Vehicle{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle models.Vehicle) error {
	log := logger.FromContext(ctx)

	values := vehicleValues(vehicle)
	delete(values, "created_at")

	query, args, err := r.builder.
		Update(vehiclesTable).
		SetMap(values).
		Where(sq.Eq{"id": vehicle.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.Update").
			Int64("id", vehicle.ID).
			Str("vin", vehicle.VIN).
			Msg("failed to update vehicle")
		if r.classify(err) == Conflict {
			return ErrVehicleConflict
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

func (r *vehicleRepository) DeactivateByIDs(ctx context.Context, ids []int64, at time.Time) (int64, error) {
	var total int64
	for _, batch := range chunkIDs(ids) {
		n, err := r.execByIDs(ctx, "vehicleRepository.DeactivateByIDs", r.builder.
			Update(vehiclesTable).
			Set("is_active", false).
			Set("deactivated_by", models.DeactivatedBySync).
			Set("updated_at", at).
			Where(sq.Eq{"id": batch, "is_active": true}))
		if err != nil {
			return total, err
		}
		total += n
	}

	return total, nil
}

func (r *vehicleRepository) TouchSynced(ctx context.Context, ids []int64, at time.Time) error {
	for _, batch := range chunkIDs(ids) {
		_, err := r.execByIDs(ctx, "vehicleRepository.TouchSynced", r.builder.
			Update(vehiclesTable).
			Set("last_synced_at", at).
			Where(sq.Eq{"id": batch}))
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *vehicleRepository) execByIDs(ctx context.Context, funcName string, builder sq.UpdateBuilder) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute bulk update")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func chunkIDs(ids []int64) [][]int64 {
	batches := make([][]int64, 0, len(ids)/idBatchSize+1)
	for start := 0; start < len(ids); start += idBatchSize {
		end := min(start+idBatchSize, len(ids))
		batches = append(batches, ids[start:end])
	}
	return batches
}

// vehicleValues maps every column except id to its value.
func vehicleValues(v models.Vehicle) map[string]any {
	return map[string]any{
		"dealer_id":      v.DealerID,
		"source":         v.Source,
		"external_id":    v.ExternalID,
		"vin":            v.VIN,
		"stock_number":   v.StockNumber,
		"year":           v.Year,
		"make":           v.Make,
		"model":          v.Model,
		"trim":           v.Trim,
		"price":          v.Price,
		"asking_price":   v.AskingPrice,
		"compare_price":  v.ComparePrice,
		"mileage":        v.Mileage,
		"mpg_city":       v.MPG.City,
		"mpg_highway":    v.MPG.Highway,
		"color":          v.Color,
		"interior_color": v.InteriorColor,
		"exterior_color": v.ExteriorColor,
		"transmission":   v.Transmission,
		"drivetrain":     v.Drivetrain,
		"fuel_type":      v.FuelType,
		"body_style":     v.BodyStyle,
		"engine":         v.Engine,
		"description":    v.Description,
		"images":         asJSON(nonNil(&v.Images)),
		"videos":         asJSON(nonNil(&v.Videos)),
		"features":       asJSON(nonNil(&v.Features)),
		"ai_features":    asJSON(&v.AIFeatures),
		"media":          asJSON(nonNil(&v.Media)),
		"is_active":      v.IsActive,
		"status":         v.Status,
		"deactivated_by": v.DeactivatedBy,
		"content_hash":   v.ContentHash,
		"last_synced_at": v.LastSyncedAt,
		"created_at":     timeOrNow(v.CreatedAt),
		"updated_at":     timeOrNow(v.UpdatedAt),
	}
}

// nonNil makes nil slices encode as [] instead of null.
func nonNil[T any](s *[]T) *[]T {
	if *s == nil {
		empty := make([]T, 0)
		return &empty
	}
	return s
}

func timeOrNow(t *time.Time) time.Time {
	if t == nil {
		return time.Now().UTC()
	}
	return *t
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(
		&v.ID,
		&v.DealerID,
		&v.Source,
		&v.ExternalID,
		&v.VIN,
		&v.StockNumber,
		&v.Year,
		&v.Make,
		&v.Model,
		&v.Trim,
		&v.Price,
		&v.AskingPrice,
		&v.ComparePrice,
		&v.Mileage,
		&v.MPG.City,
		&v.MPG.Highway,
		&v.Color,
		&v.InteriorColor,
		&v.ExteriorColor,
		&v.Transmission,
		&v.Drivetrain,
		&v.FuelType,
		&v.BodyStyle,
		&v.Engine,
		&v.Description,
		asJSON(&v.Images),
		asJSON(&v.Videos),
		asJSON(&v.Features),
		asJSON(&v.AIFeatures),
		asJSON(&v.Media),
		&v.IsActive,
		&v.Status,
		&v.DeactivatedBy,
		&v.ContentHash,
		&v.LastSyncedAt,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}
