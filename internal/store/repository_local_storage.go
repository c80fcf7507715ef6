// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
)

type localStorageRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalStorageRepository returns a [LocalStorage] backed by the
// local_storage table of db.
func NewLocalStorageRepository(db *DB, logger *logger.Logger) LocalStorage {
	return &localStorageRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *localStorageRepository) GetItem(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetItemQuery(ctx, key)
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.GetItem").Msg("failed to build query")
		return "", false, err
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.GetItem").
			Str("key", key).
			Msg("failed to read item")
		return "", false, fmt.Errorf("%w (key=%s): %w", ErrScanningRow, key, err)
	}

	return value, true, nil
}

func (r *localStorageRepository) SetItem(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetItemQuery(ctx, key, value, r.now())
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.SetItem").Msg("failed to build query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localStorageRepository.SetItem").
			Str("key", key).
			Msg("failed to upsert item")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (r *localStorageRepository) ReplaceAll(ctx context.Context, items map[string]string) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localStorageRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := buildClearQuery(ctx)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localStorageRepository.ReplaceAll").Msg("failed to clear storage")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// sorted so statements run in a stable order
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := r.now()
	for _, key := range keys {
		query, args, err = buildSetItemQuery(ctx, key, items[key], now)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localStorageRepository.ReplaceAll").
				Str("key", key).
				Msg("failed to write item")
			return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localStorageRepository.ReplaceAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
