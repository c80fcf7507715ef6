// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-hsk-keeper/models"
)

func (s *masteryService) Browse(ctx context.Context, level models.LevelKey, masteries []int, order models.SortOrder) []models.WordRecord {
	records := s.Load(ctx, level)

	if len(masteries) > 0 {
		records = slices.DeleteFunc(records, func(r models.WordRecord) bool {
			return !slices.Contains(masteries, r.Mastery)
		})
	}

	sortRecords(records, order)
	return records
}

// sortRecords orders records in place. Ties keep their stored order.
func sortRecords(records []models.WordRecord, order models.SortOrder) {
	switch order {
	case models.SortPronunciationAsc, models.SortPronunciationDesc:
		// pinyin compares by base letter first, tone marks second
		col := collate.New(language.Und)
		slices.SortStableFunc(records, func(a, b models.WordRecord) int {
			c := col.CompareString(a.Pronunciation, b.Pronunciation)
			if order == models.SortPronunciationDesc {
				return -c
			}
			return c
		})
	case models.SortMasteryAsc:
		slices.SortStableFunc(records, func(a, b models.WordRecord) int {
			return a.Mastery - b.Mastery
		})
	case models.SortMasteryDesc:
		slices.SortStableFunc(records, func(a, b models.WordRecord) int {
			return b.Mastery - a.Mastery
		})
	}
}

func (s *masteryService) Statistics(ctx context.Context) models.Statistics {
	var stats models.Statistics
	totalMastery := 0

	for _, level := range models.AllLevels() {
		records := s.Load(ctx, level)

		ls := models.LevelStatistics{Level: level, Words: len(records)}
		for _, r := range records {
			ls.TotalMastery += r.Mastery
		}
		if ls.Words > 0 {
			ls.AverageMastery = float64(ls.TotalMastery) / float64(ls.Words)
			ls.MasteryPercent = ls.AverageMastery * 100 / models.MaxMastery
		}

		stats.Levels = append(stats.Levels, ls)
		stats.TotalWords += ls.Words
		totalMastery += ls.TotalMastery
	}

	if stats.TotalWords > 0 {
		stats.AverageMastery = float64(totalMastery) / float64(stats.TotalWords)
	}

	return stats
}
