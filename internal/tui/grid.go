// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-hsk-keeper/models"
)

const (
	gridWordWidth       = 8
	gridPinyinWidth     = 16
	gridDefinitionWidth = 36
)

type gridModel struct {
	level     models.LevelKey
	records   []models.WordRecord
	idx       int
	masteries map[int]bool
	orderIdx  int
	loading   bool
}

func newGridModel() gridModel {
	return gridModel{
		level:     models.LevelKeyFor(models.MinHSKLevel),
		masteries: make(map[int]bool),
		loading:   true,
	}
}

func (m gridModel) order() models.SortOrder {
	return models.SortOrders()[m.orderIdx]
}

func (m gridModel) current() (models.WordRecord, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.WordRecord{}, false
	}
	return m.records[m.idx], true
}

// shiftLevel moves to the next (step 1) or previous (step -1) level,
// wrapping around.
func (m *gridModel) shiftLevel(step int) {
	n := m.level.Number() - 1 + step
	n = (n%models.MaxHSKLevel + models.MaxHSKLevel) % models.MaxHSKLevel
	m.level = models.LevelKeyFor(n + 1)
	m.idx = 0
	m.loading = true
}

func (m *gridModel) setRecords(level models.LevelKey, records []models.WordRecord) {
	if level != m.level {
		// a reply for a level the user already left
		return
	}
	m.loading = false
	m.records = records
	if m.idx >= len(m.records) {
		m.idx = len(m.records) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m gridModel) View() string {
	var b strings.Builder

	tabs := make([]string, 0, models.MaxHSKLevel)
	for _, level := range models.AllLevels() {
		label := fmt.Sprintf(" HSK %d ", level.Number())
		if level == m.level {
			label = selectedStyle.Render(label)
		}
		tabs = append(tabs, label)
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")
	b.WriteString("Mastery filter: ")
	b.WriteString(checkboxes(m.masteries, models.MinMastery, models.MaxMastery))
	b.WriteString("   Sort: ")
	b.WriteString(m.order().Label())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.records) == 0:
		b.WriteString("No words match the selected filters.")
	default:
		word := lipgloss.NewStyle().Width(gridWordWidth)
		pinyin := lipgloss.NewStyle().Width(gridPinyinWidth)
		definition := lipgloss.NewStyle().Width(gridDefinitionWidth)

		for i, r := range m.records {
			line := word.Render(r.Word) +
				pinyin.Render(fitText(r.Pronunciation, gridPinyinWidth-1)) +
				definition.Render(fitText(r.Definition, gridDefinitionWidth-1)) +
				masteryBar(r.Mastery, models.MaxMastery)
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("\n%d words", len(m.records)))
	}

	return renderPage("WORD GRID", b.String(),
		"tab/shift+tab: level │ ↑/↓: move │ ←/→: mastery -/+ │ 0-5: filter │ s: sort │ esc: menu")
}
