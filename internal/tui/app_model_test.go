// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
	"github.com/MKhiriev/go-hsk-keeper/internal/mock"
	"github.com/MKhiriev/go-hsk-keeper/internal/service"
	"github.com/MKhiriev/go-hsk-keeper/models"
)

type testDeps struct {
	mastery *mock.MockMasteryService
	consent *mock.MockConsentService
	model   appModel
}

func newTestApp(t *testing.T, master []models.RawWord) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		mastery: mock.NewMockMasteryService(ctrl),
		consent: mock.NewMockConsentService(ctrl),
	}
	services := &service.ClientServices{
		MasteryService: deps.mastery,
		QuizService:    service.NewQuizService(rand.New(rand.NewPCG(1, 2)), logger.Nop()),
		ConsentService: deps.consent,
	}
	exportPath := filepath.Join(t.TempDir(), models.DefaultExportFileName)
	deps.model = newAppModel(context.Background(), services, master, exportPath, models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"))
	return deps
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// send feeds msg to m and returns the new model with its command.
func send(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok)
	return am, cmd
}

// settle runs cmd and feeds its message back until no command is left.
// Batches and ticks are not followed.
func settle(t *testing.T, m appModel, cmd tea.Cmd) appModel {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case tea.BatchMsg, clearStatusMsg, nil:
			return m
		}
		m, cmd = send(t, m, msg)
	}
	return m
}

var hsk1 = []models.WordRecord{
	{Word: "爱", Pronunciation: "ài", Definition: "love", HSK: 1, Mastery: 0},
	{Word: "八", Pronunciation: "bā", Definition: "eight", HSK: 1, Mastery: 2},
}

func TestAppModel_ConsentBanner(t *testing.T) {
	deps := newTestApp(t, nil)
	deps.consent.EXPECT().Given(gomock.Any()).Return(false)
	deps.consent.EXPECT().Give(gomock.Any()).Return(nil)

	m := settle(t, deps.model, deps.model.Init())
	assert.Contains(t, m.View(), "local database file")

	m, cmd := send(t, m, keyPress("a"))
	m = settle(t, m, cmd)

	assert.True(t, m.menu.consent)
	assert.NotContains(t, m.View(), "local database file")
}

func TestAppModel_ConsentAlreadyGiven(t *testing.T) {
	deps := newTestApp(t, nil)
	deps.consent.EXPECT().Given(gomock.Any()).Return(true)

	m := settle(t, deps.model, deps.model.Init())

	assert.NotContains(t, m.View(), "local database file")
	m, cmd := send(t, m, keyPress("a"))
	assert.Nil(t, cmd, "nothing to acknowledge")
	assert.True(t, m.menu.consent)
}

func TestAppModel_BuildInfo(t *testing.T) {
	deps := newTestApp(t, nil)

	m, _ := send(t, deps.model, keyPress("v"))
	assert.Contains(t, m.View(), "v1.0.0")
	assert.Contains(t, m.View(), "abc123")

	m, _ = send(t, m, keyPress("esc"))
	assert.False(t, m.showBuildInfo)
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	deps := newTestApp(t, nil)

	m, cmd := send(t, deps.model, keyPress("ctrl+c"))

	require.NotNil(t, cmd)
	assert.True(t, m.quitByUser)
}

func TestAppModel_GridAdjustMastery(t *testing.T) {
	deps := newTestApp(t, nil)
	ctx := gomock.Any()

	updated := []models.WordRecord{hsk1[0], hsk1[1]}
	updated[1].Mastery = 3

	gomock.InOrder(
		deps.mastery.EXPECT().Browse(ctx, models.LevelKey("hsk1"), []int{}, models.SortNone).Return(hsk1),
		deps.mastery.EXPECT().AdjustMastery(ctx, models.LevelKey("hsk1"), "八", 1).Return(3, nil),
		deps.mastery.EXPECT().Browse(ctx, models.LevelKey("hsk1"), []int{}, models.SortNone).Return(updated),
	)

	m, cmd := send(t, deps.model, keyPress("enter"))
	m = settle(t, m, cmd)
	require.Equal(t, screenGrid, m.currentScreen)
	require.Len(t, m.grid.records, 2)

	m, _ = send(t, m, keyPress("down"))
	m, cmd = send(t, m, keyPress("right"))
	m = settle(t, m, cmd)

	assert.Equal(t, 3, m.grid.records[1].Mastery)
	assert.Equal(t, 1, m.grid.idx, "cursor stays on the word")
	assert.Contains(t, m.View(), "●●●○○")
}

func TestAppModel_GridLevelFilterAndSort(t *testing.T) {
	deps := newTestApp(t, nil)
	ctx := gomock.Any()

	gomock.InOrder(
		deps.mastery.EXPECT().Browse(ctx, models.LevelKey("hsk1"), []int{}, models.SortNone).Return(hsk1),
		deps.mastery.EXPECT().Browse(ctx, models.LevelKey("hsk2"), []int{}, models.SortNone).Return(nil),
		deps.mastery.EXPECT().Browse(ctx, models.LevelKey("hsk2"), []int{3}, models.SortNone).Return(nil),
		deps.mastery.EXPECT().Browse(ctx, models.LevelKey("hsk2"), []int{3}, models.SortPronunciationAsc).Return(nil),
		deps.mastery.EXPECT().Browse(ctx, models.LevelKey("hsk1"), []int{3}, models.SortPronunciationAsc).Return(nil),
	)

	m, cmd := send(t, deps.model, keyPress("enter"))
	m = settle(t, m, cmd)

	m, cmd = send(t, m, keyPress("tab"))
	m = settle(t, m, cmd)
	assert.Equal(t, models.LevelKey("hsk2"), m.grid.level)

	m, cmd = send(t, m, keyPress("3"))
	m = settle(t, m, cmd)

	m, cmd = send(t, m, keyPress("s"))
	m = settle(t, m, cmd)

	m, cmd = send(t, m, keyPress("shift+tab"))
	m = settle(t, m, cmd)

	assert.Contains(t, m.View(), "No words match")
	assert.Contains(t, m.View(), "[x]3")
}

func TestAppModel_GridMasteryError(t *testing.T) {
	deps := newTestApp(t, nil)
	deps.mastery.EXPECT().Browse(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(hsk1)
	deps.mastery.EXPECT().AdjustMastery(gomock.Any(), models.LevelKey("hsk1"), "爱", -1).
		Return(0, service.ErrNotFound)

	m, cmd := send(t, deps.model, keyPress("enter"))
	m = settle(t, m, cmd)
	m, cmd = send(t, m, keyPress("left"))
	m = settle(t, m, cmd)

	require.True(t, m.showError)
	assert.Contains(t, m.View(), "no longer in its level")

	m, _ = send(t, m, keyPress("esc"))
	assert.False(t, m.showError)
}

func openStats(t *testing.T, deps *testDeps) appModel {
	t.Helper()
	deps.mastery.EXPECT().Statistics(gomock.Any()).Return(models.Statistics{
		TotalWords:     2,
		AverageMastery: 1,
		Levels:         []models.LevelStatistics{{Level: "hsk1", Words: 2, TotalMastery: 2, AverageMastery: 1, MasteryPercent: 20}},
	}).AnyTimes()

	m, _ := send(t, deps.model, keyPress("down"))
	m, cmd := send(t, m, keyPress("enter"))
	m = settle(t, m, cmd)
	require.Equal(t, screenStats, m.currentScreen)
	return m
}

func TestAppModel_StatsView(t *testing.T) {
	deps := newTestApp(t, nil)
	m := openStats(t, deps)

	view := m.View()
	assert.Contains(t, view, "Total words: 2")
	assert.Contains(t, view, "20.0%")
}

func TestAppModel_Export(t *testing.T) {
	deps := newTestApp(t, nil)
	m := openStats(t, deps)
	deps.mastery.EXPECT().WriteExport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, `{"hsk1":[]}`)
			return err
		})

	m, cmd := send(t, m, keyPress("e"))
	m = settle(t, m, cmd)

	data, err := os.ReadFile(m.exportPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hsk1":[]}`, string(data))
	assert.Contains(t, m.stats.status, "Exported to")
}

func TestAppModel_Import(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hsk1":[{"Word":"八","Mastery":4}]}`), 0o644))

	deps := newTestApp(t, nil)
	m := openStats(t, deps)
	deps.mastery.EXPECT().ReadImport(gomock.Any(), gomock.Any()).Return(nil)

	m, _ = send(t, m, keyPress("i"))
	require.True(t, m.stats.importing)
	m, _ = send(t, m, keyPress(path))
	m, cmd := send(t, m, keyPress("enter"))
	m = settle(t, m, cmd)

	assert.False(t, m.stats.importing)
	assert.False(t, m.showError)
	assert.Equal(t, "Import complete", m.stats.status)
}

func TestAppModel_ImportErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		deps := newTestApp(t, nil)
		m := openStats(t, deps)

		m, _ = send(t, m, keyPress("i"))
		m, _ = send(t, m, keyPress(filepath.Join(t.TempDir(), "absent.json")))
		m, cmd := send(t, m, keyPress("enter"))
		m = settle(t, m, cmd)

		require.True(t, m.showError)
		assert.Contains(t, m.errorOverlay.message, "File not found")
	})

	t.Run("malformed document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("nope"), 0o644))

		deps := newTestApp(t, nil)
		m := openStats(t, deps)
		deps.mastery.EXPECT().ReadImport(gomock.Any(), gomock.Any()).Return(service.ErrImport)

		m, _ = send(t, m, keyPress("i"))
		m, _ = send(t, m, keyPress(path))
		m, cmd := send(t, m, keyPress("enter"))
		m = settle(t, m, cmd)

		require.True(t, m.showError)
		assert.Contains(t, m.errorOverlay.message, "not a valid mastery export")
	})

	t.Run("cancelled", func(t *testing.T) {
		deps := newTestApp(t, nil)
		m := openStats(t, deps)

		m, _ = send(t, m, keyPress("i"))
		m, cmd := send(t, m, keyPress("esc"))

		assert.Nil(t, cmd)
		assert.False(t, m.stats.importing)
		assert.Equal(t, screenStats, m.currentScreen)
	})
}

func TestAppModel_Reset(t *testing.T) {
	master := []models.RawWord{{Word: "爱", Pronunciation: "ài", Definition: "love", HSK: 1}}

	t.Run("confirmed", func(t *testing.T) {
		deps := newTestApp(t, master)
		m := openStats(t, deps)
		m.menu.consent = true
		deps.mastery.EXPECT().ResetAll(gomock.Any(), master).Return(nil)

		m, _ = send(t, m, keyPress("r"))
		require.True(t, m.showConfirm)
		m, cmd := send(t, m, keyPress("y"))
		m = settle(t, m, cmd)

		assert.False(t, m.showConfirm)
		assert.False(t, m.menu.consent, "reset clears the acknowledgement")
		assert.Equal(t, "All progress has been reset", m.stats.status)
	})

	t.Run("declined", func(t *testing.T) {
		deps := newTestApp(t, master)
		m := openStats(t, deps)

		m, _ = send(t, m, keyPress("r"))
		m, cmd := send(t, m, keyPress("n"))

		assert.Nil(t, cmd)
		assert.False(t, m.showConfirm)
	})

	t.Run("no word list", func(t *testing.T) {
		deps := newTestApp(t, nil)
		m := openStats(t, deps)

		m, _ = send(t, m, keyPress("r"))

		assert.False(t, m.showConfirm)
		require.True(t, m.showError)
		assert.Contains(t, m.errorOverlay.message, "word list is not loaded")
	})

	t.Run("storage failure", func(t *testing.T) {
		deps := newTestApp(t, master)
		m := openStats(t, deps)
		deps.mastery.EXPECT().ResetAll(gomock.Any(), master).Return(errors.New("reset storage: disk full"))

		m, _ = send(t, m, keyPress("r"))
		m, cmd := send(t, m, keyPress("y"))
		m = settle(t, m, cmd)

		require.True(t, m.showError)
		assert.Contains(t, m.errorOverlay.message, "disk full")
	})
}
