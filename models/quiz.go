// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QuestionOptionsLimit is the maximum number of answer options per question.
const QuestionOptionsLimit = 6

// Question is one multiple-choice quiz item. Options always contains Target
// and is already shuffled.
type Question struct {
	ID      string
	Target  WordRecord
	Options []WordRecord
}

// QuizFilter holds the selection of the quiz filter controls. An empty set
// means no restriction.
type QuizFilter struct {
	Levels    map[int]bool
	Masteries map[int]bool
}

// NewQuizFilter returns a filter with no restrictions.
func NewQuizFilter() QuizFilter {
	return QuizFilter{
		Levels:    make(map[int]bool),
		Masteries: make(map[int]bool),
	}
}

// LevelSet returns the selected HSK levels.
func (f QuizFilter) LevelSet() []int {
	return selected(f.Levels)
}

// MasterySet returns the selected mastery values.
func (f QuizFilter) MasterySet() []int {
	return selected(f.Masteries)
}

func selected(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k, on := range m {
		if on {
			out = append(out, k)
		}
	}
	return out
}
