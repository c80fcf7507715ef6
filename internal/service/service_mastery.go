// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
	"github.com/MKhiriev/go-hsk-keeper/internal/store"
	"github.com/MKhiriev/go-hsk-keeper/internal/validators"
	"github.com/MKhiriev/go-hsk-keeper/models"
)

type masteryService struct {
	storage   store.LocalStorage
	validator validators.Validator
	logger    *logger.Logger

	// serialises read-modify-write of a level
	mu sync.Mutex
}

// NewMasteryService creates a MasteryService over storage. Stored and
// imported documents are checked with validator before use.
func NewMasteryService(storage store.LocalStorage, validator validators.Validator, logger *logger.Logger) MasteryService {
	return &masteryService{
		storage:   storage,
		validator: validator,
		logger:    logger,
	}
}

func (s *masteryService) Initialize(ctx context.Context, master []models.RawWord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	levels := s.partition(master)

	for _, level := range models.AllLevels() {
		records, ok := levels[level]
		if !ok {
			continue
		}

		_, exists, err := s.storage.GetItem(ctx, level.String())
		if err != nil {
			return fmt.Errorf("check level %s: %w", level, err)
		}
		if exists {
			continue
		}

		if err = s.save(ctx, level, records); err != nil {
			return err
		}
		s.logger.Info().
			Str("func", "masteryService.Initialize").
			Str("level", level.String()).
			Int("words", len(records)).
			Msg("level seeded")
	}

	return nil
}

func (s *masteryService) Load(ctx context.Context, level models.LevelKey) []models.WordRecord {
	records, _, err := s.read(ctx, level)
	if err != nil {
		s.logger.Err(err).Str("func", "masteryService.Load").Str("level", level.String()).Msg("storage read failed")
	}
	return records
}

func (s *masteryService) SetMastery(ctx context.Context, level models.LevelKey, word string, value int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setMastery(ctx, level, word, func(int) int { return value })
}

func (s *masteryService) AdjustMastery(ctx context.Context, level models.LevelKey, word string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setMastery(ctx, level, word, func(current int) int { return current + delta })
}

// setMastery must be called with s.mu held.
func (s *masteryService) setMastery(ctx context.Context, level models.LevelKey, word string, next func(current int) int) (int, error) {
	if !level.Valid() {
		return 0, fmt.Errorf("%w: level %q", ErrNotFound, level)
	}

	records, _, err := s.read(ctx, level)
	if err != nil {
		return 0, err
	}

	idx := indexOfWord(records, word)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q in %s", ErrNotFound, word, level)
	}

	current := records[idx].Mastery
	value := next(current)
	if !models.IsValidMastery(value) {
		s.logger.Debug().
			Str("func", "masteryService.SetMastery").
			Str("word", word).
			Int("value", value).
			Msg("mastery out of range, ignored")
		return current, nil
	}

	if value == current {
		return current, nil
	}

	records[idx].Mastery = value
	if err := s.save(ctx, level, records); err != nil {
		return current, err
	}

	return value, nil
}

func (s *masteryService) ResetAll(ctx context.Context, master []models.RawWord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	levels := s.partition(master)

	items := make(map[string]string, len(levels))
	for level, records := range levels {
		payload, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("encode level %s: %w", level, err)
		}
		items[level.String()] = string(payload)
	}

	if err := s.storage.ReplaceAll(ctx, items); err != nil {
		return fmt.Errorf("reset storage: %w", err)
	}

	s.logger.Info().Str("func", "masteryService.ResetAll").Int("levels", len(items)).Msg("progress reset")
	return nil
}

func (s *masteryService) ExportMastery(ctx context.Context) (models.MasteryExport, error) {
	export := make(models.MasteryExport)

	for _, level := range models.AllLevels() {
		records, exists, err := s.read(ctx, level)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}

		entries := make([]models.MasteryEntry, 0, len(records))
		for _, r := range records {
			entries = append(entries, models.MasteryEntry{Word: r.Word, Mastery: r.Mastery})
		}
		export[level] = entries
	}

	return export, nil
}

func (s *masteryService) WriteExport(ctx context.Context, w io.Writer) error {
	export, err := s.ExportMastery(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err = enc.Encode(export); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	return nil
}

func (s *masteryService) ImportMastery(ctx context.Context, payload models.MasteryExport) error {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return fmt.Errorf("%w: %w", ErrImport, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, level := range models.AllLevels() {
		entries, ok := payload[level]
		if !ok {
			continue
		}

		records, exists, err := s.read(ctx, level)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}

		imported := make(map[string]int, len(entries))
		for _, e := range entries {
			// first entry wins, like a linear search through the document
			if _, dup := imported[e.Word]; !dup {
				imported[e.Word] = e.Mastery
			}
		}

		for i := range records {
			if mastery, found := imported[records[i].Word]; found {
				records[i].Mastery = mastery
			}
		}

		if err = s.save(ctx, level, records); err != nil {
			return err
		}
	}

	for key := range payload {
		if !key.Valid() {
			s.logger.Warn().Str("func", "masteryService.ImportMastery").Str("level", key.String()).Msg("unknown level skipped")
		}
	}

	return nil
}

func (s *masteryService) ReadImport(ctx context.Context, r io.Reader) error {
	var payload models.MasteryExport
	dec := json.NewDecoder(r)
	err := dec.Decode(&payload)
	if err == nil && payload == nil {
		err = errors.New("document is null")
	}
	if err == nil {
		if _, tokErr := dec.Token(); !errors.Is(tokErr, io.EOF) {
			err = errors.New("unexpected data after document")
		}
	}
	if err != nil {
		s.logger.Err(err).Str("func", "masteryService.ReadImport").Msg("malformed import document")
		return fmt.Errorf("%w: %w", ErrImport, err)
	}

	return s.ImportMastery(ctx, payload)
}

func (s *masteryService) AllWords(ctx context.Context) []models.WordRecord {
	all := make([]models.WordRecord, 0)
	for _, level := range models.AllLevels() {
		all = append(all, s.Load(ctx, level)...)
	}
	return all
}

// read loads and validates level. exists is false when the key is absent or
// its content is unusable; err is set only when the storage itself fails.
func (s *masteryService) read(ctx context.Context, level models.LevelKey) (records []models.WordRecord, exists bool, err error) {
	records = make([]models.WordRecord, 0)

	if !level.Valid() {
		return records, false, nil
	}

	raw, ok, err := s.storage.GetItem(ctx, level.String())
	if err != nil {
		return records, false, fmt.Errorf("read level %s: %w", level, err)
	}
	if !ok {
		return records, false, nil
	}

	var stored []models.WordRecord
	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn().Err(err).Str("func", "masteryService.read").Str("level", level.String()).Msg("malformed level data treated as absent")
		return records, false, nil
	}
	if err = s.validator.Validate(ctx, stored); err != nil {
		s.logger.Warn().Err(err).Str("func", "masteryService.read").Str("level", level.String()).Msg("invalid level data treated as absent")
		return records, false, nil
	}

	if stored == nil {
		return records, true, nil
	}
	return stored, true, nil
}

func (s *masteryService) save(ctx context.Context, level models.LevelKey, records []models.WordRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode level %s: %w", level, err)
	}

	if err = s.storage.SetItem(ctx, level.String(), string(payload)); err != nil {
		return fmt.Errorf("save level %s: %w", level, err)
	}

	return nil
}

// partition groups master by level in list order. Entries with an HSK value
// outside 1..6 are dropped; within a level the first occurrence of a word
// wins.
func (s *masteryService) partition(master []models.RawWord) map[models.LevelKey][]models.WordRecord {
	levels := make(map[models.LevelKey][]models.WordRecord)
	seen := make(map[models.LevelKey]map[string]struct{})
	skipped, duplicates := 0, 0

	for _, raw := range master {
		if !models.IsValidHSKLevel(raw.HSK) {
			skipped++
			continue
		}

		level := models.LevelKeyFor(raw.HSK)
		if seen[level] == nil {
			seen[level] = make(map[string]struct{})
		}
		if _, dup := seen[level][raw.Word]; dup {
			duplicates++
			continue
		}
		seen[level][raw.Word] = struct{}{}

		levels[level] = append(levels[level], models.NewWordRecord(raw))
	}

	if skipped > 0 || duplicates > 0 {
		s.logger.Warn().
			Str("func", "masteryService.partition").
			Int("invalid_level", skipped).
			Int("duplicates", duplicates).
			Msg("master list entries skipped")
	}

	return levels
}

func indexOfWord(records []models.WordRecord, word string) int {
	for i := range records {
		if records[i].Word == word {
			return i
		}
	}
	return -1
}
