// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-hsk-keeper/internal/service"
	"github.com/MKhiriev/go-hsk-keeper/models"
)

type screen int

const (
	screenMenu screen = iota
	screenGrid
	screenStats
	screenQuiz
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	master        []models.RawWord
	exportPath    string
	buildInfo     models.AppBuildInfo
	currentScreen screen

	menu  menuModel
	grid  gridModel
	stats statsModel
	quiz  quizModel

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, master []models.RawWord, exportPath string, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		master:        master,
		exportPath:    exportPath,
		buildInfo:     buildInfo,
		currentScreen: screenMenu,
		menu:          newMenuModel(),
		grid:          newGridModel(),
		stats:         newStatsModel(),
		quiz:          newQuizModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadConsent()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdReset()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case consentLoadedMsg:
		m.menu.consent = msg.given
		m.menu.consentKnown = true
		return m, nil
	case consentSavedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.menu.consent = true
		return m, nil
	case gridLoadedMsg:
		m.grid.setRecords(msg.level, msg.records)
		return m, nil
	case masteryChangedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if m.currentScreen == screenQuiz {
			m.quiz.applyMastery(msg.word, msg.value)
			return m, nil
		}
		return m, m.cmdLoadGrid()
	case statsLoadedMsg:
		m.stats.stats = msg.stats
		m.stats.loaded = true
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.stats.status = "Exported to " + msg.path
		return m, cmdClearStatus()
	case importDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.stats.status = "Import complete"
		return m, tea.Batch(m.cmdLoadStats(), cmdClearStatus())
	case resetDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.stats.status = "All progress has been reset"
		m.menu.consent = false
		return m, tea.Batch(m.cmdLoadStats(), cmdClearStatus())
	case quizPoolLoadedMsg:
		m.quiz.pool = msg.pool
		m.quiz.loaded = true
		m.quiz.nextQuestion(m.services.QuizService)
		return m, nil
	case copiedMsg:
		m.stats.status = "Copied!"
		return m, cmdClearStatus()
	case errMsg:
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	case clearStatusMsg:
		m.stats.status = ""
		m.quiz.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenGrid:
		return m.updateGrid(msg)
	case screenStats:
		return m.updateStats(msg)
	case screenQuiz:
		return m.updateQuiz(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.menu.View()
	case screenGrid:
		body = m.grid.View()
	case screenStats:
		body = m.stats.View()
	case screenQuiz:
		body = m.quiz.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) open(target screen) (tea.Model, tea.Cmd) {
	m.currentScreen = target
	switch target {
	case screenGrid:
		m.grid.loading = true
		return m, m.cmdLoadGrid()
	case screenStats:
		return m, m.cmdLoadStats()
	case screenQuiz:
		return m, m.cmdLoadQuizPool()
	}
	return m, nil
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(m.menu.items)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.open(m.menu.current().target)
	case key.Matches(keyMsg, keys.accept):
		if m.menu.consentKnown && !m.menu.consent {
			return m, m.cmdGiveConsent()
		}
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateGrid(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.grid.idx > 0 {
			m.grid.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.grid.idx < len(m.grid.records)-1 {
			m.grid.idx++
		}
	case key.Matches(keyMsg, keys.tab):
		m.grid.shiftLevel(1)
		return m, m.cmdLoadGrid()
	case key.Matches(keyMsg, keys.backtab):
		m.grid.shiftLevel(-1)
		return m, m.cmdLoadGrid()
	case key.Matches(keyMsg, keys.left):
		if record, ok := m.grid.current(); ok {
			return m, m.cmdAdjustMastery(record, -1)
		}
	case key.Matches(keyMsg, keys.right):
		if record, ok := m.grid.current(); ok {
			return m, m.cmdAdjustMastery(record, 1)
		}
	case key.Matches(keyMsg, keys.sort):
		m.grid.orderIdx = (m.grid.orderIdx + 1) % len(models.SortOrders())
		return m, m.cmdLoadGrid()
	default:
		if v, ok := digit(keyMsg.String()); ok && models.IsValidMastery(v) {
			toggle(m.grid.masteries, v)
			m.grid.idx = 0
			return m, m.cmdLoadGrid()
		}
	}
	return m, nil
}

func (m appModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.stats.importing {
		return m.updateStatsImport(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.export):
		return m, m.cmdExport()
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopyExport()
	case key.Matches(keyMsg, keys.importFile):
		m.stats.startImport()
		return m, nil
	case key.Matches(keyMsg, keys.reset):
		if len(m.master) == 0 {
			m.showErrorf(humanizeError(service.ErrNoWordList))
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = "Reset all progress? Every mastery value goes back to 0."
	}
	return m, nil
}

func (m appModel) updateStatsImport(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.stats.stopImport()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			path := strings.TrimSpace(m.stats.input.Value())
			if path == "" {
				path = models.DefaultExportFileName
			}
			m.stats.stopImport()
			return m, m.cmdImport(path)
		}
	}

	var cmd tea.Cmd
	m.stats.input, cmd = m.stats.input.Update(msg)
	return m, cmd
}

func (m appModel) updateQuiz(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.quiz.settingMastery {
		if key.Matches(keyMsg, keys.esc) {
			m.quiz.settingMastery = false
			return m, nil
		}
		if v, ok := digit(keyMsg.String()); ok && models.IsValidMastery(v) {
			m.quiz.settingMastery = false
			m.quiz.status = "Mastery saved"
			return m, tea.Batch(m.cmdSetMastery(m.quiz.question.Target, v), cmdClearStatus())
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.quiz.focus = m.quiz.focus.next(1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.quiz.focus = m.quiz.focus.next(-1)
		return m, nil
	case key.Matches(keyMsg, keys.next):
		if m.quiz.loaded {
			m.quiz.nextQuestion(m.services.QuizService)
		}
		return m, nil
	case key.Matches(keyMsg, keys.mastery):
		if m.quiz.hasQuestion {
			m.quiz.settingMastery = true
		}
		return m, nil
	}

	v, ok := digit(keyMsg.String())
	if !ok {
		return m, nil
	}

	switch m.quiz.focus {
	case focusLevels:
		if models.IsValidHSKLevel(v) {
			toggle(m.quiz.filter.Levels, v)
			return m, m.cmdLoadQuizPool()
		}
	case focusMasteries:
		if models.IsValidMastery(v) {
			toggle(m.quiz.filter.Masteries, v)
			return m, m.cmdLoadQuizPool()
		}
	default:
		m.quiz.answer(m.services.QuizService, v-1)
	}
	return m, nil
}
