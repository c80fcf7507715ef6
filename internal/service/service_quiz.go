// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
	"github.com/MKhiriev/go-hsk-keeper/internal/utils"
	"github.com/MKhiriev/go-hsk-keeper/models"
)

type quizService struct {
	mu  sync.Mutex
	rnd *rand.Rand
	ids *utils.UUIDGenerator

	logger *logger.Logger
}

// NewQuizService creates a QuizService drawing from rnd. Pass a seeded
// source for reproducible questions.
func NewQuizService(rnd *rand.Rand, logger *logger.Logger) QuizService {
	return &quizService{rnd: rnd, ids: utils.NewUUIDGenerator(), logger: logger}
}

func (q *quizService) FilterPool(all []models.WordRecord, levels, masteries []int) []models.WordRecord {
	pool := make([]models.WordRecord, 0, len(all))
	for _, w := range all {
		if len(levels) > 0 && !slices.Contains(levels, w.HSK) {
			continue
		}
		if len(masteries) > 0 && !slices.Contains(masteries, w.Mastery) {
			continue
		}
		pool = append(pool, w)
	}
	return pool
}

// NextQuestion picks a target uniformly and grows the options with uniform
// draws, rejecting a record already chosen. A pool smaller than
// [models.QuestionOptionsLimit] is padded with its own prefix after each
// draw, so options may repeat a record; their number never exceeds the pool
// size.
func (q *quizService) NextQuestion(pool []models.WordRecord) (models.Question, bool) {
	if len(pool) == 0 {
		q.logger.Debug().Str("func", "quizService.NextQuestion").Msg("empty pool")
		return models.Question{}, false
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	size := min(models.QuestionOptionsLimit, len(pool))

	target := q.rnd.IntN(len(pool))
	picked := []int{target}

	for len(picked) < size {
		candidate := q.rnd.IntN(len(pool))
		if !slices.Contains(picked, candidate) {
			picked = append(picked, candidate)
		}

		if len(pool) < models.QuestionOptionsLimit && len(picked) < size {
			need := size - len(picked)
			for i := range need {
				picked = append(picked, i)
			}
		}
	}

	q.rnd.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	options := make([]models.WordRecord, len(picked))
	for i, idx := range picked {
		options[i] = pool[idx]
	}

	return models.Question{
		ID:      q.ids.Generate(),
		Target:  pool[target],
		Options: options,
	}, true
}

func (q *quizService) Evaluate(target, selected models.WordRecord) bool {
	return selected.Word == target.Word
}
