// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-hsk-keeper/internal/adapter"
	"github.com/MKhiriev/go-hsk-keeper/internal/app"
	"github.com/MKhiriev/go-hsk-keeper/internal/config"
	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
	"github.com/MKhiriev/go-hsk-keeper/internal/service"
	"github.com/MKhiriev/go-hsk-keeper/internal/tui"
	"github.com/MKhiriev/go-hsk-keeper/models"
)

// stdoutPath makes -export write to standard output.
const stdoutPath = "-"

var errNilDependency = errors.New("client: nil dependency")

type App struct {
	services *service.ClientServices
	source   adapter.WordListSource
	ui       UI
	workers  config.ClientWorkers
	command  config.ClientCommand
	out      io.Writer
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, source adapter.WordListSource, ui UI, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || source == nil || ui == nil || cfg == nil {
		return nil, errNilDependency
	}

	return &App{
		services: services,
		source:   source,
		ui:       ui,
		workers:  cfg.Workers,
		command:  cfg.Command,
		out:      os.Stdout,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	master := a.seed(ctx)

	if a.command.Headless() {
		return a.runCommand(ctx, master)
	}

	if a.services.BackupJob != nil {
		a.services.BackupJob.Start(ctx, a.workers.BackupInterval)
		defer a.services.BackupJob.Stop()
		a.logger.Info().
			Str("func", "App.Run").
			Str("path", a.workers.BackupPath).
			Dur("interval", a.workers.BackupInterval).
			Msg(app.MsgBackupStarted)
	}

	err := a.ui.Run(ctx, master)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

// seed loads the master list and initializes absent levels. A load failure
// is logged and leaves the store as it was; nil is returned in that case.
func (a *App) seed(ctx context.Context) []models.RawWord {
	master, err := a.source.FetchWordList(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "App.seed").Msg(app.MsgWordListLoadFailed)
		return nil
	}

	if err = a.services.MasteryService.Initialize(ctx, master); err != nil {
		a.logger.Err(err).Str("func", "App.seed").Msg(app.MsgSeedFailed)
		return master
	}

	a.logger.Info().Str("func", "App.seed").Int("words", len(master)).Msg(app.MsgStoreSeeded)
	return master
}

// runCommand runs the headless operations in the order reset, import,
// export.
func (a *App) runCommand(ctx context.Context, master []models.RawWord) error {
	if a.command.Reset {
		if len(master) == 0 {
			return service.ErrNoWordList
		}
		if err := a.services.MasteryService.ResetAll(ctx, master); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Fprintln(a.out, app.MsgProgressReset)
	}

	if a.command.Import != "" {
		if err := a.importFrom(ctx, a.command.Import); err != nil {
			return err
		}
		fmt.Fprintln(a.out, app.MsgImportApplied, a.command.Import)
	}

	if a.command.Export != "" {
		if a.command.Export == stdoutPath {
			return a.services.MasteryService.WriteExport(ctx, a.out)
		}
		if err := a.exportTo(ctx, a.command.Export); err != nil {
			return err
		}
		fmt.Fprintln(a.out, app.MsgExportWritten, a.command.Export)
	}

	return nil
}

func (a *App) importFrom(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	return a.services.MasteryService.ReadImport(ctx, f)
}

func (a *App) exportTo(ctx context.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err = a.services.MasteryService.WriteExport(ctx, f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	return nil
}
