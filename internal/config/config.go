// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-hsk-keeper application. It is populated by merging values from
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: log file and export location.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Source describes where the master word list is loaded from.
	Source Source `envPrefix:"SOURCE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Command holds one-shot headless operations. Only settable by flags.
	Command Command

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the path of the JSON log file. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is the minimum zerolog level written (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ExportPath is where the statistics screen writes the mastery export.
	// Env: APP_EXPORT_PATH
	ExportPath string `env:"EXPORT_PATH"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "hsk.db" or "file:hsk.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Source holds settings of the master word list source.
type Source struct {
	// WordList is a file path or an http(s) URL of the master word list.
	// Env: SOURCE_WORD_LIST
	WordList string `env:"WORD_LIST"`

	// RequestTimeout bounds a single fetch of the word list (e.g. "15s").
	// Env: SOURCE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BackupInterval is how often the mastery export is written to
	// BackupPath. Zero disables the backup job.
	// Env: WORKERS_BACKUP_INTERVAL
	BackupInterval time.Duration `env:"BACKUP_INTERVAL"`

	// BackupPath is the destination file of periodic backups.
	// Env: WORKERS_BACKUP_PATH
	BackupPath string `env:"BACKUP_PATH"`
}

// Command selects a headless operation run instead of the TUI.
type Command struct {
	Export string
	Import string
	Reset  bool
}

// Default values applied before any other source.
const (
	DefaultLogLevel       = "info"
	DefaultDSN            = "hsk.db"
	DefaultWordList       = "json/hsk.json"
	DefaultRequestTimeout = 15 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App:     App{LogLevel: DefaultLogLevel},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Source: Source{
			WordList:       DefaultWordList,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
