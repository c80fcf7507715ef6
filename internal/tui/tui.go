// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal presentation of hsk-keeper: a menu, the word
// grid, the statistics dashboard and the quiz. Every read and write goes
// through the services in [service.ClientServices]; screens only hold read
// snapshots and re-fetch after a change.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
	"github.com/MKhiriev/go-hsk-keeper/internal/service"
	"github.com/MKhiriev/go-hsk-keeper/models"
)

var ErrUserQuit = errors.New("user quit")

var errNilServices = errors.New("tui: services are not configured")

type TUI struct {
	services   *service.ClientServices
	exportPath string
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

// New creates the terminal UI. The statistics screen exports to exportPath,
// or to models.DefaultExportFileName when it is empty.
func New(services *service.ClientServices, exportPath string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNilServices
	}
	if exportPath == "" {
		exportPath = models.DefaultExportFileName
	}

	return &TUI{
		services:   services,
		exportPath: exportPath,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

// Run blocks until the user leaves the program or ctx is cancelled. master is
// the loaded word list used by reset; it is nil when the list could not be
// fetched.
func (t *TUI) Run(ctx context.Context, master []models.RawWord) error {
	model := newAppModel(ctx, t.services, master, t.exportPath, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal program stopped")
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
