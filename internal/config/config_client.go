// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	LogFile    string
	LogLevel   string
	ExportPath string
}

// ClientSource holds the word list source settings.
type ClientSource struct {
	// WordList is a file path or http(s) URL.
	WordList string
	// RequestTimeout is the timeout of a single word list fetch.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// BackupInterval defines how often the backup job runs. Zero disables it.
	BackupInterval time.Duration
	// BackupPath is the file the backup job overwrites.
	BackupPath string
}

// ClientCommand is the headless operation requested on the command line.
type ClientCommand struct {
	Export string
	Import string
	Reset  bool
}

// Headless reports whether a one-shot command replaces the TUI.
func (c ClientCommand) Headless() bool {
	return c.Export != "" || c.Import != "" || c.Reset
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Source  ClientSource
	Workers ClientWorkers
	Command ClientCommand
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:    cfg.App.LogFile,
			LogLevel:   cfg.App.LogLevel,
			ExportPath: cfg.App.ExportPath,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Source: ClientSource{
			WordList:       cfg.Source.WordList,
			RequestTimeout: cfg.Source.RequestTimeout,
		},
		Workers: ClientWorkers{
			BackupInterval: cfg.Workers.BackupInterval,
			BackupPath:     cfg.Workers.BackupPath,
		},
		Command: ClientCommand{
			Export: cfg.Command.Export,
			Import: cfg.Command.Import,
			Reset:  cfg.Command.Reset,
		},
	}
}
