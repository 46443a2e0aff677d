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

const (
	dealerConfigsTable = "dealer_feed_configs"
	dealerUsersTable   = "dealer_users"
)

var dealerConfigColumns = []string{
	"dealer_id", "feed_base_url", "encrypted_api_key", "is_enabled",
	"interval_minutes", "page_size", "updated_at",
}

type dealerConfigRepository struct {
	*DB
	logger *logger.Logger
}

func NewDealerConfigRepository(db *DB, logger *logger.Logger) DealerConfigRepository {
	return &dealerConfigRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *dealerConfigRepository) GetByDealerID(ctx context.Context, dealerID string) (models.DealerConfig, error) {
	query, args, err := r.builder.
		Select(dealerConfigColumns...).
		From(dealerConfigsTable).
		Where(sq.Eq{"dealer_id": dealerID}).
		ToSql()
	if err != nil {
		return models.DealerConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	cfg, err := scanDealerConfig(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DealerConfig{}, ErrDealerConfigNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "dealerConfigRepository.GetByDealerID").
			Str("dealer_id", dealerID).
			Msg("failed to get dealer feed configuration")
		return models.DealerConfig{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cfg, nil
}

func (r *dealerConfigRepository) ListEnabled(ctx context.Context) ([]models.DealerConfig, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(dealerConfigColumns...).
		From(dealerConfigsTable).
		Where(sq.Eq{"is_enabled": true}).
		OrderBy("dealer_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "dealerConfigRepository.ListEnabled").Msg("failed to execute query for enabled dealers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	configs := make([]models.DealerConfig, 0)
	for rows.Next() {
		cfg, scanErr := scanDealerConfig(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return configs, nil
}

// Save inserts or replaces the configuration of cfg.DealerID.
func (r *dealerConfigRepository) Save(ctx context.Context, cfg models.DealerConfig) error {
	now := time.Now().UTC()

	query, args, err := r.builder.
		Insert(dealerConfigsTable).
		Columns(dealerConfigColumns...).
		Values(cfg.DealerID, cfg.FeedBaseURL, cfg.EncryptedAPIKey, cfg.IsEnabled, cfg.IntervalMinutes, cfg.PageSize, now).
		Suffix(`ON CONFLICT (dealer_id) DO UPDATE SET
			feed_base_url = excluded.feed_base_url,
			encrypted_api_key = excluded.encrypted_api_key,
			is_enabled = excluded.is_enabled,
			interval_minutes = excluded.interval_minutes,
			page_size = excluded.page_size,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "dealerConfigRepository.Save").
			Str("dealer_id", cfg.DealerID).
			Msg("failed to save dealer feed configuration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanDealerConfig(row rowScanner) (models.DealerConfig, error) {
	var cfg models.DealerConfig
	err := row.Scan(
		&cfg.DealerID,
		&cfg.FeedBaseURL,
		&cfg.EncryptedAPIKey,
		&cfg.IsEnabled,
		&cfg.IntervalMinutes,
		&cfg.PageSize,
		&cfg.UpdatedAt,
	)
	return cfg, err
}

type dealerUserRepository struct {
	*DB
	logger *logger.Logger
}

func NewDealerUserRepository(db *DB, logger *logger.Logger) DealerUserRepository {
	return &dealerUserRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *dealerUserRepository) FindDealerIDByUserID(ctx context.Context, userID int64) (string, error) {
	query, args, err := r.builder.
		Select("dealer_id").
		From(dealerUsersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var dealerID string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&dealerID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrDealerUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "dealerUserRepository.FindDealerIDByUserID").
			Int64("user_id", userID).
			Msg("failed to find dealer of user")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return dealerID, nil
}

// Link assigns userID to dealerID, replacing any previous assignment.
func (r *dealerUserRepository) Link(ctx context.Context, userID int64, dealerID string) error {
	query, args, err := r.builder.
		Insert(dealerUsersTable).
		Columns("user_id", "dealer_id").
		Values(userID, dealerID).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET dealer_id = excluded.dealer_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "dealerUserRepository.Link").
			Int64("user_id", userID).
			Msg("failed to link user to dealer")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
