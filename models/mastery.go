// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
)

// DefaultExportFileName is the name of the document produced by a mastery
// export.
const DefaultExportFileName = "mastery_data.json"

// MasteryEntry is the exported view of a record: identity plus mastery.
type MasteryEntry struct {
	Word    string `json:"Word"`
	Mastery int    `json:"Mastery"`
}

// ErrIncompleteEntry is returned when a mastery entry lacks Word or Mastery,
// or carries null for either.
var ErrIncompleteEntry = errors.New("mastery entry needs both Word and Mastery")

// UnmarshalJSON requires both keys so that a missing Mastery cannot decode
// to the zero value and wipe progress.
func (e *MasteryEntry) UnmarshalJSON(b []byte) error {
	var raw struct {
		Word    *string `json:"Word"`
		Mastery *int    `json:"Mastery"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Word == nil || raw.Mastery == nil {
		return ErrIncompleteEntry
	}

	e.Word, e.Mastery = *raw.Word, *raw.Mastery
	return nil
}

// MasteryExport maps each level to the mastery of its words. It is the shape
// of both the export and the import document.
type MasteryExport map[LevelKey][]MasteryEntry

// SortOrder selects how the word grid is ordered.
type SortOrder string

const (
	SortNone              SortOrder = "none"
	SortPronunciationAsc  SortOrder = "pronunciation_asc"
	SortPronunciationDesc SortOrder = "pronunciation_desc"
	SortMasteryAsc        SortOrder = "mastery_asc"
	SortMasteryDesc       SortOrder = "mastery_desc"
)

// SortOrders lists the orders in the sequence the grid cycles through them.
func SortOrders() []SortOrder {
	return []SortOrder{
		SortNone,
		SortPronunciationAsc,
		SortPronunciationDesc,
		SortMasteryAsc,
		SortMasteryDesc,
	}
}

// Label is a short human readable name for the order.
func (o SortOrder) Label() string {
	switch o {
	case SortPronunciationAsc:
		return "pinyin ↑"
	case SortPronunciationDesc:
		return "pinyin ↓"
	case SortMasteryAsc:
		return "mastery ↑"
	case SortMasteryDesc:
		return "mastery ↓"
	default:
		return "default"
	}
}

// LevelStatistics summarises one level.
type LevelStatistics struct {
	Level          LevelKey
	Words          int
	TotalMastery   int
	AverageMastery float64
	// MasteryPercent is the average mastery scaled to 0..100.
	MasteryPercent float64
}

// Statistics summarises the whole store for the dashboard.
type Statistics struct {
	TotalWords     int
	AverageMastery float64
	Levels         []LevelStatistics
}
