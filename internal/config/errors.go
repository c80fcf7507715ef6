// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSourceConfigs indicates invalid word list source settings
	// (for example, empty source or non-positive request timeout).
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a backup interval without a backup path).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidCommandConfigs indicates conflicting headless commands.
	ErrInvalidCommandConfigs = errors.New("invalid command configuration")
)
