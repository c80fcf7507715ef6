// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-d database DSN
//	-w word list source (file path or http(s) URL)
//	-request-timeout word list fetch timeout (e.g., "15s")
//	-log-file log file path
//	-log-level minimum log level (debug, info, warn, error)
//	-export-path export file used by the statistics screen
//	-backup-interval backup job interval (e.g., "10m"); 0 disables
//	-backup-path backup file path
//	-c/-config json file path with configs
//	-export write the mastery export to a file and exit
//	-import merge a mastery export from a file and exit
//	-reset reset all progress and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var databaseDSN string
	var wordList string
	var requestTimeout time.Duration
	var logFile string
	var logLevel string
	var exportPath string
	var backupInterval time.Duration
	var backupPath string
	var jsonConfigPath string
	var exportTo string
	var importFrom string
	var reset bool

	fs := flag.NewFlagSet("hsk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&wordList, "w", "", "Word list file path or URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Word list request timeout (e.g., 15s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&exportPath, "export-path", "", "Export file used by the statistics screen")
	fs.DurationVar(&backupInterval, "backup-interval", 0, "Backup interval (e.g., 10m)")
	fs.StringVar(&backupPath, "backup-path", "", "Backup file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&exportTo, "export", "", "Export mastery to a file and exit")
	fs.StringVar(&importFrom, "import", "", "Import mastery from a file and exit")
	fs.BoolVar(&reset, "reset", false, "Reset all progress and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:    logFile,
			LogLevel:   logLevel,
			ExportPath: exportPath,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Source: Source{
			WordList:       wordList,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			BackupInterval: backupInterval,
			BackupPath:     backupPath,
		},
		Command: Command{
			Export: exportTo,
			Import: importFrom,
			Reset:  reset,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
