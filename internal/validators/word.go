// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-hsk-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldWord targets the record identity.
	FieldWord = "word"

	// FieldHSK targets the HSK level number (1..6).
	FieldHSK = "hsk"

	// FieldMastery targets the mastery score (0..5).
	FieldMastery = "mastery"

	// FieldRecords applies record-level checks to every element of a list.
	FieldRecords = "records"

	// FieldUniqueWords requires Word to be unique within a list.
	FieldUniqueWords = "unique_words"

	// FieldNotEmpty requires a list to contain at least one element.
	FieldNotEmpty = "not_empty"
)

// WordValidator implements the Validator interface for the word models that
// cross a trust boundary: stored level lists, the master word list and
// mastery import documents.
type WordValidator struct {
}

// NewWordValidator constructs a new WordValidator and returns it as the
// Validator interface.
func NewWordValidator() Validator {
	return &WordValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.WordRecord / *models.WordRecord
//   - []models.WordRecord (one persisted level)
//   - models.RawWord / *models.RawWord
//   - []models.RawWord (the master list)
//   - models.MasteryEntry / *models.MasteryEntry
//   - models.MasteryExport (an import document)
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *WordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.WordRecord:
		return v.validateWordRecord(ctx, value, fields...)
	case *models.WordRecord:
		return v.validateWordRecord(ctx, *value, fields...)
	case []models.WordRecord:
		return v.validateLevel(ctx, value, fields...)
	case models.RawWord:
		return v.validateRawWord(ctx, value, fields...)
	case *models.RawWord:
		return v.validateRawWord(ctx, *value, fields...)
	case []models.RawWord:
		return v.validateWordList(ctx, value, fields...)
	case models.MasteryEntry:
		return v.validateMasteryEntry(ctx, value, fields...)
	case *models.MasteryEntry:
		return v.validateMasteryEntry(ctx, *value, fields...)
	case models.MasteryExport:
		return v.validateMasteryExport(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateWordRecord checks a single persisted record.
//
// Default validated fields: Word, HSK, Mastery.
func (v *WordValidator) validateWordRecord(_ context.Context, record models.WordRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWord, FieldHSK, FieldMastery}
	}

	for _, f := range fields {
		switch f {
		case FieldWord:
			if strings.TrimSpace(record.Word) == "" {
				return ErrEmptyWord
			}
		case FieldHSK:
			if !models.IsValidHSKLevel(record.HSK) {
				return ErrInvalidHSK
			}
		case FieldMastery:
			if !models.IsValidMastery(record.Mastery) {
				return ErrInvalidMastery
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLevel checks the sequence stored under one level key.
//
// Default validated fields: Records, UniqueWords. An empty level is valid.
func (v *WordValidator) validateLevel(ctx context.Context, records []models.WordRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecords, FieldUniqueWords}
	}

	for _, f := range fields {
		switch f {
		case FieldRecords:
			for i, record := range records {
				if err := v.validateWordRecord(ctx, record); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		case FieldUniqueWords:
			seen := make(map[string]struct{}, len(records))
			for i, record := range records {
				if _, ok := seen[record.Word]; ok {
					return fmt.Errorf("validation error at index %d (%s): %w", i, record.Word, ErrDuplicateWord)
				}
				seen[record.Word] = struct{}{}
			}
		case FieldNotEmpty:
			if len(records) == 0 {
				return ErrEmptyWordList
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRawWord checks one master list entry.
//
// Default validated fields: Word. The HSK level is not checked by default:
// entries outside 1..6 are skipped during seeding rather than failing the
// whole list.
func (v *WordValidator) validateRawWord(_ context.Context, raw models.RawWord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWord}
	}

	for _, f := range fields {
		switch f {
		case FieldWord:
			if strings.TrimSpace(raw.Word) == "" {
				return ErrEmptyWord
			}
		case FieldHSK:
			if !models.IsValidHSKLevel(raw.HSK) {
				return ErrInvalidHSK
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateWordList checks the fetched master list.
//
// Default validated fields: NotEmpty, Records.
func (v *WordValidator) validateWordList(ctx context.Context, list []models.RawWord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldRecords}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmpty:
			if len(list) == 0 {
				return ErrEmptyWordList
			}
		case FieldRecords:
			for i, raw := range list {
				if err := v.validateRawWord(ctx, raw); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMasteryEntry checks one {Word, Mastery} pair of an import document.
//
// Default validated fields: Word, Mastery.
func (v *WordValidator) validateMasteryEntry(_ context.Context, entry models.MasteryEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWord, FieldMastery}
	}

	for _, f := range fields {
		switch f {
		case FieldWord:
			if strings.TrimSpace(entry.Word) == "" {
				return ErrEmptyWord
			}
		case FieldMastery:
			if !models.IsValidMastery(entry.Mastery) {
				return ErrInvalidMastery
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMasteryExport checks every entry of every level in an import
// document. Keys are not checked here; levels unknown to the store are
// skipped by the importer.
func (v *WordValidator) validateMasteryExport(ctx context.Context, payload models.MasteryExport, fields ...string) error {
	for level, entries := range payload {
		for i, entry := range entries {
			if err := v.validateMasteryEntry(ctx, entry, fields...); err != nil {
				return fmt.Errorf("validation error at %s[%d]: %w", level, i, err)
			}
		}
	}

	return nil
}
