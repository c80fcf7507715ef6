// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-hsk-keeper/models"
)

type statsModel struct {
	stats  models.Statistics
	loaded bool
	bar    progress.Model

	importing bool
	input     textinput.Model

	status string
}

func newStatsModel() statsModel {
	input := textinput.New()
	input.Placeholder = models.DefaultExportFileName
	input.Prompt = "Import from: "
	input.CharLimit = 4096

	return statsModel{
		bar:   progress.New(progress.WithWidth(30), progress.WithoutPercentage()),
		input: input,
	}
}

func (m *statsModel) startImport() {
	m.importing = true
	m.input.SetValue("")
	m.input.Focus()
}

func (m *statsModel) stopImport() {
	m.importing = false
	m.input.Blur()
}

func (m statsModel) View() string {
	var b strings.Builder

	if !m.loaded {
		b.WriteString("Loading...")
	} else {
		b.WriteString(fmt.Sprintf("Total words: %d   Average mastery: %.2f\n\n", m.stats.TotalWords, m.stats.AverageMastery))
		for _, ls := range m.stats.Levels {
			b.WriteString(fmt.Sprintf("HSK %d  %5d words  avg %.2f  ", ls.Level.Number(), ls.Words, ls.AverageMastery))
			b.WriteString(m.bar.ViewAs(ls.MasteryPercent / 100))
			b.WriteString(fmt.Sprintf(" %5.1f%%\n", ls.MasteryPercent))
		}
	}

	if m.importing {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "e: export │ c: copy export │ i: import │ r: reset │ esc: menu"
	if m.importing {
		hotKeys = "enter: import │ esc: cancel"
	}

	return renderPage("STATISTICS", strings.TrimRight(b.String(), "\n"), hotKeys)
}
