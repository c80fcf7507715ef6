// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op; the client view carries the real rules.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	// mastery must survive restarts, an in-memory database would not
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Source.WordList == "" || cfg.Source.RequestTimeout <= 0 {
		return ErrInvalidSourceConfigs
	}

	if cfg.Workers.BackupInterval < 0 ||
		(cfg.Workers.BackupInterval > 0 && cfg.Workers.BackupPath == "") {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Command.Export != "" && cfg.Command.Import != "" {
		return ErrInvalidCommandConfigs
	}

	return nil
}
