// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-hsk-keeper/internal/service"
	"github.com/MKhiriev/go-hsk-keeper/models"
)

var statusTTL = 2 * time.Second

func (m appModel) cmdLoadConsent() tea.Cmd {
	return func() tea.Msg {
		return consentLoadedMsg{given: m.services.ConsentService.Given(m.ctx)}
	}
}

func (m appModel) cmdGiveConsent() tea.Cmd {
	return func() tea.Msg {
		return consentSavedMsg{err: m.services.ConsentService.Give(m.ctx)}
	}
}

func (m appModel) cmdLoadGrid() tea.Cmd {
	level, masteries, order := m.grid.level, values(m.grid.masteries), m.grid.order()
	return func() tea.Msg {
		return gridLoadedMsg{
			level:   level,
			records: m.services.MasteryService.Browse(m.ctx, level, masteries, order),
		}
	}
}

func (m appModel) cmdAdjustMastery(record models.WordRecord, delta int) tea.Cmd {
	return func() tea.Msg {
		value, err := m.services.MasteryService.AdjustMastery(m.ctx, record.Level(), record.Word, delta)
		return masteryChangedMsg{word: record.Word, value: value, err: err}
	}
}

func (m appModel) cmdSetMastery(record models.WordRecord, value int) tea.Cmd {
	return func() tea.Msg {
		got, err := m.services.MasteryService.SetMastery(m.ctx, record.Level(), record.Word, value)
		return masteryChangedMsg{word: record.Word, value: got, err: err}
	}
}

func (m appModel) cmdLoadStats() tea.Cmd {
	return func() tea.Msg {
		return statsLoadedMsg{stats: m.services.MasteryService.Statistics(m.ctx)}
	}
}

func (m appModel) cmdExport() tea.Cmd {
	path := m.exportPath
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{path: path, err: fmt.Errorf("create export file: %w", err)}
		}

		if err = m.services.MasteryService.WriteExport(m.ctx, f); err != nil {
			f.Close()
			return exportDoneMsg{path: path, err: err}
		}
		if err = f.Close(); err != nil {
			return exportDoneMsg{path: path, err: fmt.Errorf("close export file: %w", err)}
		}

		return exportDoneMsg{path: path}
	}
}

func (m appModel) cmdCopyExport() tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		if err := m.services.MasteryService.WriteExport(m.ctx, &buf); err != nil {
			return errMsg{err: err}
		}
		if err := clipboard.WriteAll(buf.String()); err != nil {
			return errMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m appModel) cmdImport(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: fmt.Errorf("open import file: %w", err)}
		}
		defer f.Close()

		return importDoneMsg{err: m.services.MasteryService.ReadImport(m.ctx, f)}
	}
}

func (m appModel) cmdReset() tea.Cmd {
	master := m.master
	return func() tea.Msg {
		if len(master) == 0 {
			return resetDoneMsg{err: service.ErrNoWordList}
		}
		return resetDoneMsg{err: m.services.MasteryService.ResetAll(m.ctx, master)}
	}
}

func (m appModel) cmdLoadQuizPool() tea.Cmd {
	levels, masteries := m.quiz.filter.LevelSet(), m.quiz.filter.MasterySet()
	return func() tea.Msg {
		all := m.services.MasteryService.AllWords(m.ctx)
		return quizPoolLoadedMsg{pool: m.services.QuizService.FilterPool(all, levels, masteries)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
