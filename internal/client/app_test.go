// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-hsk-keeper/internal/adapter"
	"github.com/MKhiriev/go-hsk-keeper/internal/config"
	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
	"github.com/MKhiriev/go-hsk-keeper/internal/mock"
	"github.com/MKhiriev/go-hsk-keeper/internal/service"
	"github.com/MKhiriev/go-hsk-keeper/internal/tui"
	"github.com/MKhiriev/go-hsk-keeper/models"
)

// spyUI records the word list it was started with.
type spyUI struct {
	calls  int
	master []models.RawWord
	err    error
}

func (s *spyUI) Run(_ context.Context, master []models.RawWord) error {
	s.calls++
	s.master = master
	return s.err
}

var master = []models.RawWord{
	{Word: "爱", Pronunciation: "ài", Definition: "love", HSK: 1},
	{Word: "吧", Pronunciation: "ba", Definition: "particle", HSK: 2},
}

type appDeps struct {
	source  *mock.MockWordListSource
	mastery *mock.MockMasteryService
	backup  *mock.MockBackupJob
	ui      *spyUI
	out     *bytes.Buffer
}

func newTestApp(t *testing.T, cfg config.ClientConfig, withBackup bool) (*App, *appDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &appDeps{
		source:  mock.NewMockWordListSource(ctrl),
		mastery: mock.NewMockMasteryService(ctrl),
		ui:      &spyUI{},
		out:     &bytes.Buffer{},
	}
	services := &service.ClientServices{MasteryService: deps.mastery}
	if withBackup {
		deps.backup = mock.NewMockBackupJob(ctrl)
		services.BackupJob = deps.backup
	}

	a, err := NewApp(services, deps.source, deps.ui, &cfg, logger.Nop())
	require.NoError(t, err)
	a.out = deps.out
	return a, deps
}

func TestNewApp_NilDependencies(t *testing.T) {
	_, err := NewApp(nil, nil, nil, nil, logger.Nop())
	assert.ErrorIs(t, err, errNilDependency)
}

func TestRun_SeedsAndStartsUI(t *testing.T) {
	a, deps := newTestApp(t, config.ClientConfig{}, false)
	deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
	deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(nil)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, 1, deps.ui.calls)
	assert.Equal(t, master, deps.ui.master)
}

func TestRun_LoadFailureLeavesStoreUnseeded(t *testing.T) {
	a, deps := newTestApp(t, config.ClientConfig{}, false)
	deps.source.EXPECT().FetchWordList(gomock.Any()).
		Return(nil, errors.Join(adapter.ErrLoadFailure, errors.New("404")))

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, 1, deps.ui.calls, "the UI still starts on previously stored data")
	assert.Nil(t, deps.ui.master)
}

func TestRun_SeedErrorKeepsWordList(t *testing.T) {
	a, deps := newTestApp(t, config.ClientConfig{}, false)
	deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
	deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(errors.New("locked"))

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, master, deps.ui.master)
}

func TestRun_UserQuitIsNotAnError(t *testing.T) {
	a, deps := newTestApp(t, config.ClientConfig{}, false)
	deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
	deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(nil)
	deps.ui.err = tui.ErrUserQuit

	assert.NoError(t, a.Run(context.Background()))
}

func TestRun_UIErrorPropagates(t *testing.T) {
	a, deps := newTestApp(t, config.ClientConfig{}, false)
	deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
	deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(nil)
	deps.ui.err = errors.New("no tty")

	assert.EqualError(t, a.Run(context.Background()), "no tty")
}

func TestRun_BackupJobLifecycle(t *testing.T) {
	cfg := config.ClientConfig{Workers: config.ClientWorkers{BackupInterval: time.Minute, BackupPath: "backup.json"}}
	a, deps := newTestApp(t, cfg, true)
	deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
	deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(nil)
	gomock.InOrder(
		deps.backup.EXPECT().Start(gomock.Any(), time.Minute),
		deps.backup.EXPECT().Stop(),
	)

	require.NoError(t, a.Run(context.Background()))
}

func TestRun_HeadlessExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	a, deps := newTestApp(t, config.ClientConfig{Command: config.ClientCommand{Export: path}}, true)
	deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
	deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(nil)
	deps.mastery.EXPECT().WriteExport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, `{"hsk1":[{"Word":"爱","Mastery":0}]}`)
			return err
		})

	require.NoError(t, a.Run(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hsk1":[{"Word":"爱","Mastery":0}]}`, string(data))
	assert.Contains(t, deps.out.String(), path)
	assert.Zero(t, deps.ui.calls, "headless commands do not start the UI")
}

func TestRun_HeadlessExportToStdout(t *testing.T) {
	a, deps := newTestApp(t, config.ClientConfig{Command: config.ClientCommand{Export: "-"}}, false)
	deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
	deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(nil)
	deps.mastery.EXPECT().WriteExport(gomock.Any(), deps.out).Return(nil)

	require.NoError(t, a.Run(context.Background()))
}

func TestRun_HeadlessImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hsk1":[]}`), 0o644))

	a, deps := newTestApp(t, config.ClientConfig{Command: config.ClientCommand{Import: path}}, false)
	deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
	deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(nil)
	deps.mastery.EXPECT().ReadImport(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, deps.out.String(), path)
}

func TestRun_HeadlessImportErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.json")
		a, deps := newTestApp(t, config.ClientConfig{Command: config.ClientCommand{Import: path}}, false)
		deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
		deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(nil)

		assert.ErrorIs(t, a.Run(context.Background()), os.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("nope"), 0o644))
		a, deps := newTestApp(t, config.ClientConfig{Command: config.ClientCommand{Import: path}}, false)
		deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
		deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(nil)
		deps.mastery.EXPECT().ReadImport(gomock.Any(), gomock.Any()).Return(service.ErrImport)

		assert.ErrorIs(t, a.Run(context.Background()), service.ErrImport)
	})
}

func TestRun_HeadlessReset(t *testing.T) {
	a, deps := newTestApp(t, config.ClientConfig{Command: config.ClientCommand{Reset: true}}, false)
	deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
	deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(nil)
	deps.mastery.EXPECT().ResetAll(gomock.Any(), master).Return(nil)

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, deps.out.String(), "reset")
}

func TestRun_HeadlessResetWithoutWordList(t *testing.T) {
	a, deps := newTestApp(t, config.ClientConfig{Command: config.ClientCommand{Reset: true}}, false)
	deps.source.EXPECT().FetchWordList(gomock.Any()).Return(nil, adapter.ErrLoadFailure)

	assert.ErrorIs(t, a.Run(context.Background()), service.ErrNoWordList)
}

func TestRun_HeadlessResetThenExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	cmd := config.ClientCommand{Reset: true, Export: path}
	a, deps := newTestApp(t, config.ClientConfig{Command: cmd}, false)
	deps.source.EXPECT().FetchWordList(gomock.Any()).Return(master, nil)
	deps.mastery.EXPECT().Initialize(gomock.Any(), master).Return(nil)
	gomock.InOrder(
		deps.mastery.EXPECT().ResetAll(gomock.Any(), master).Return(nil),
		deps.mastery.EXPECT().WriteExport(gomock.Any(), gomock.Any()).Return(nil),
	)

	require.NoError(t, a.Run(context.Background()))
}
