// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalStorage is a device-wide string key/value store. Values are opaque to
// the store; a missing key is reported by ok == false, never by an error.
type LocalStorage interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	// ReplaceAll clears the store and writes items in one transaction.
	ReplaceAll(ctx context.Context, items map[string]string) error
}
