// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// hsk-keeper client runtime.
//
// Msg* constants are printed by the headless commands and written into log
// entries to describe the outcome of an operation. Keeping them in one place
// keeps the wording consistent between the terminal output and the logs.
package app

const (
	// MsgWordListLoadFailed is logged when the master word list cannot be
	// fetched or parsed. The store is left unseeded.
	MsgWordListLoadFailed = "word list could not be loaded, store left unseeded"

	// MsgStoreSeeded is logged after first-run seeding completed.
	MsgStoreSeeded = "word store initialized"

	// MsgSeedFailed is logged when the store rejected the seeding writes.
	MsgSeedFailed = "word store could not be initialized"

	// MsgExportWritten is printed after a headless export.
	MsgExportWritten = "mastery exported to"

	// MsgImportApplied is printed after a headless import.
	MsgImportApplied = "mastery imported from"

	// MsgProgressReset is printed after a headless reset.
	MsgProgressReset = "all progress has been reset"

	// MsgBackupStarted is logged when the periodic backup job starts.
	MsgBackupStarted = "backup job started"
)
