// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hsk-keeper/internal/config"
	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
)

// ClientStorages groups the client-side storage repositories.
type ClientStorages struct {
	// LocalStorage is the SQLite-backed key/value store holding the word
	// lists and the consent flag.
	LocalStorage LocalStorage

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a fresh [LocalStorage] repository.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LocalStorage: NewLocalStorageRepository(db, logger),
		db:           db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
