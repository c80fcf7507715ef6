// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-hsk-keeper/internal/service"
	"github.com/MKhiriev/go-hsk-keeper/models"
)

type quizFocus int

const (
	focusAnswers quizFocus = iota
	focusLevels
	focusMasteries
)

func (f quizFocus) next(step int) quizFocus {
	const n = 3
	return quizFocus(((int(f)+step)%n + n) % n)
}

// quizModel follows the question cycle: a fresh question awaits an answer,
// answering moves it to answered, and the next question starts over.
type quizModel struct {
	filter models.QuizFilter
	focus  quizFocus

	pool        []models.WordRecord
	loaded      bool
	question    models.Question
	hasQuestion bool

	answered bool
	selected int
	correct  bool

	settingMastery bool

	asked  int
	right  int
	status string
}

func newQuizModel() quizModel {
	return quizModel{filter: models.NewQuizFilter()}
}

// nextQuestion draws a new question from the current pool.
func (m *quizModel) nextQuestion(quiz service.QuizService) {
	m.question, m.hasQuestion = quiz.NextQuestion(m.pool)
	m.answered = false
	m.selected = -1
	m.correct = false
	m.settingMastery = false
}

func (m *quizModel) answer(quiz service.QuizService, option int) {
	if !m.hasQuestion || m.answered || option < 0 || option >= len(m.question.Options) {
		return
	}
	m.selected = option
	m.correct = quiz.Evaluate(m.question.Target, m.question.Options[option])
	m.answered = true
	m.asked++
	if m.correct {
		m.right++
	}
}

// applyMastery refreshes the snapshot after the store accepted a new value.
func (m *quizModel) applyMastery(word string, value int) {
	if m.question.Target.Word == word {
		m.question.Target.Mastery = value
	}
	for i := range m.question.Options {
		if m.question.Options[i].Word == word {
			m.question.Options[i].Mastery = value
		}
	}
	for i := range m.pool {
		if m.pool[i].Word == word {
			m.pool[i].Mastery = value
		}
	}
}

func (m quizModel) View() string {
	var b strings.Builder

	b.WriteString(focusMarker(m.focus == focusLevels))
	b.WriteString("HSK:     ")
	b.WriteString(checkboxes(m.filter.Levels, models.MinHSKLevel, models.MaxHSKLevel))
	b.WriteString("\n")
	b.WriteString(focusMarker(m.focus == focusMasteries))
	b.WriteString("Mastery: ")
	b.WriteString(checkboxes(m.filter.Masteries, models.MinMastery, models.MaxMastery))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString("Loading...")
	case !m.hasQuestion:
		b.WriteString("No words match the selected filters.")
	default:
		target := m.question.Target
		b.WriteString(focusMarker(m.focus == focusAnswers))
		b.WriteString(fmt.Sprintf("What is the pronunciation and meaning of: %s?\n", target.Word))
		b.WriteString(fmt.Sprintf("  HSK: %d | Mastery: %d\n\n", target.HSK, target.Mastery))

		for i, opt := range m.question.Options {
			line := fmt.Sprintf("%d. %s - %s", i+1, opt.Pronunciation, opt.Definition)
			if m.answered {
				switch {
				case opt.Word == target.Word:
					line = correctStyle.Render(line + "  ✓")
				case i == m.selected:
					line = wrongStyle.Render(line + "  ✗")
				}
			}
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}

		if m.answered {
			b.WriteString("\n")
			if m.correct {
				b.WriteString(correctStyle.Render("Correct!"))
			} else {
				b.WriteString(wrongStyle.Render("Wrong."))
			}
			b.WriteString("\n")
		}
		if m.settingMastery {
			b.WriteString("\nNew mastery for " + target.Word + " (0-5): ")
		}
	}

	b.WriteString(fmt.Sprintf("\n\nPool: %d words   Score: %d/%d", len(m.pool), m.right, m.asked))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	hotKeys := "tab: focus │ 1-6: answer / toggle │ n: next │ m: set mastery │ esc: menu"
	if m.settingMastery {
		hotKeys = "0-5: mastery │ esc: cancel"
	}

	return renderPage("QUIZ", b.String(), hotKeys)
}

func focusMarker(on bool) string {
	if on {
		return "> "
	}
	return "  "
}
