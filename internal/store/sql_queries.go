// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	localStorageTable = "local_storage"

	columnKey       = "key"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"

	upsertSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

// psql is the statement builder for SQLite: "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetItemQuery(_ context.Context, key string) (string, []any, error) {
	query, args, err := psql.
		Select(columnValue).
		From(localStorageTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSetItemQuery(_ context.Context, key, value string, now time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert(localStorageTable).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, value, now).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildClearQuery(_ context.Context) (string, []any, error) {
	query, args, err := psql.
		Delete(localStorageTable).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
