// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds of the HSK level and mastery scales.
const (
	MinHSKLevel = 1
	MaxHSKLevel = 6

	MinMastery = 0
	MaxMastery = 5
)

// RawWord is a single entry of the master word list. It carries no mastery
// value; mastery is assigned when the list is partitioned into levels.
type RawWord struct {
	Word          string `json:"Word"`
	Pronunciation string `json:"Pronunciation"`
	Definition    string `json:"Definition"`
	HSK           int    `json:"HSK"`
}

// WordRecord is a word together with the user's self-assessed mastery.
// Word is unique within its level and acts as the record key.
type WordRecord struct {
	Word          string `json:"Word"`
	Pronunciation string `json:"Pronunciation"`
	Definition    string `json:"Definition"`
	HSK           int    `json:"HSK"`
	Mastery       int    `json:"Mastery"`
}

// NewWordRecord builds an unlearned record from a master list entry.
func NewWordRecord(raw RawWord) WordRecord {
	return WordRecord{
		Word:          raw.Word,
		Pronunciation: raw.Pronunciation,
		Definition:    raw.Definition,
		HSK:           raw.HSK,
		Mastery:       MinMastery,
	}
}

// Level returns the storage partition the record belongs to.
func (w WordRecord) Level() LevelKey {
	return LevelKeyFor(w.HSK)
}

// IsValidMastery reports whether v is inside the mastery scale.
func IsValidMastery(v int) bool {
	return v >= MinMastery && v <= MaxMastery
}

// IsValidHSKLevel reports whether v is one of the six HSK levels.
func IsValidHSKLevel(v int) bool {
	return v >= MinHSKLevel && v <= MaxHSKLevel
}

// LevelKey identifies a persisted word list partition: hsk1 .. hsk6.
type LevelKey string

const levelKeyPrefix = "hsk"

// LevelKeyFor returns the partition key for an HSK level number.
// The result is not checked; use [LevelKey.Valid] when the input is untrusted.
func LevelKeyFor(hsk int) LevelKey {
	return LevelKey(levelKeyPrefix + strconv.Itoa(hsk))
}

// ParseLevelKey accepts "hsk3", "HSK3" or "3" and returns the matching key.
func ParseLevelKey(s string) (LevelKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, levelKeyPrefix)

	n, err := strconv.Atoi(s)
	if err != nil || !IsValidHSKLevel(n) {
		return "", fmt.Errorf("invalid HSK level %q", s)
	}

	return LevelKeyFor(n), nil
}

// Number returns the HSK level number encoded in the key, or 0 when the key
// is malformed.
func (k LevelKey) Number() int {
	n, err := strconv.Atoi(strings.TrimPrefix(string(k), levelKeyPrefix))
	if err != nil || !IsValidHSKLevel(n) {
		return 0
	}
	return n
}

// Valid reports whether the key names one of the six levels.
func (k LevelKey) Valid() bool {
	return k.Number() != 0
}

func (k LevelKey) String() string {
	return string(k)
}

// AllLevels returns every level key in ascending order.
func AllLevels() []LevelKey {
	levels := make([]LevelKey, 0, MaxHSKLevel)
	for i := MinHSKLevel; i <= MaxHSKLevel; i++ {
		levels = append(levels, LevelKeyFor(i))
	}
	return levels
}
