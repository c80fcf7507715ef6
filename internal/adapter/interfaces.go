// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides access to the master HSK word list.
//
// The primary abstraction is [WordListSource], which decouples the service
// layer from where the list lives. [NewWordListSource] picks an HTTP
// implementation (resty) for http(s) URLs and a file implementation for
// everything else.
//
// Every failure is reported as [ErrLoadFailure] wrapping the cause, so that
// callers can log it and leave the store unseeded. HTTP status codes are
// additionally mapped by statusError to the cause sentinels in errors.go.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-hsk-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// WordListSource loads the master word list: entries with Word,
// Pronunciation, Definition and HSK but no mastery.
type WordListSource interface {
	// FetchWordList reads and decodes the whole list. The result has passed
	// validation: it is non-empty and every entry has a Word.
	FetchWordList(ctx context.Context) ([]models.RawWord, error)
}
