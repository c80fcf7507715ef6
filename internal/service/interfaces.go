// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the domain logic: the mastery store over the local
// key/value storage, the quiz generator, and the background backup job.
package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-hsk-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MasteryService owns the persisted word lists of the six HSK levels and is
// the only writer of mastery values.
type MasteryService interface {
	// Initialize partitions master by level, assigns mastery 0 and writes
	// every level whose key is not stored yet. Existing progress is never
	// overwritten, so calling it on every start is safe.
	Initialize(ctx context.Context, master []models.RawWord) error

	// Load returns the stored sequence of level. Missing or malformed data
	// yields an empty slice; Load never fails.
	Load(ctx context.Context, level models.LevelKey) []models.WordRecord

	// SetMastery stores value for word in level and returns the new value.
	// A value outside 0..5 is ignored and the current value is returned.
	// Returns ErrNotFound for an unknown level or word.
	SetMastery(ctx context.Context, level models.LevelKey, word string, value int) (int, error)

	// AdjustMastery moves the mastery of word by delta with the same rules
	// as SetMastery.
	AdjustMastery(ctx context.Context, level models.LevelKey, word string, delta int) (int, error)

	// ResetAll clears the whole storage and writes every level of master
	// again with mastery 0.
	ResetAll(ctx context.Context, master []models.RawWord) error

	// ExportMastery snapshots {Word, Mastery} of every stored level.
	ExportMastery(ctx context.Context) (models.MasteryExport, error)

	// WriteExport writes ExportMastery as indented JSON.
	WriteExport(ctx context.Context, w io.Writer) error

	// ImportMastery copies Mastery from payload onto stored words matched by
	// Word. Unknown levels and words are skipped; no word is added or removed.
	ImportMastery(ctx context.Context, payload models.MasteryExport) error

	// ReadImport decodes and validates an import document, then applies it
	// with ImportMastery. Returns ErrImport without touching the store when
	// the document is malformed.
	ReadImport(ctx context.Context, r io.Reader) error

	// Browse returns the words of level whose mastery is in masteries (all
	// when empty) ordered by order.
	Browse(ctx context.Context, level models.LevelKey, masteries []int, order models.SortOrder) []models.WordRecord

	// Statistics summarises the stored levels.
	Statistics(ctx context.Context) models.Statistics

	// AllWords concatenates every level in level order.
	AllWords(ctx context.Context) []models.WordRecord
}

// QuizService builds multiple-choice questions. It holds no state between
// questions.
type QuizService interface {
	// FilterPool keeps the records whose HSK is in levels and whose Mastery is
	// in masteries. An empty set means no restriction.
	FilterPool(all []models.WordRecord, levels, masteries []int) []models.WordRecord

	// NextQuestion draws a question from pool. ok is false when pool is empty.
	NextQuestion(pool []models.WordRecord) (q models.Question, ok bool)

	// Evaluate reports whether selected is the target.
	Evaluate(target, selected models.WordRecord) bool
}

// ConsentService keeps the storage notice acknowledgement. The flag lives in
// the same storage as the word lists and is cleared by a reset.
type ConsentService interface {
	Given(ctx context.Context) bool
	Give(ctx context.Context) error
}

// BackupJob periodically writes the mastery export to a file.
type BackupJob interface {
	// Start launches the background goroutine. Any previously running job is
	// stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
