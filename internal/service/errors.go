// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNotFound is returned when a mastery update targets an unknown level
	// or a word missing from its level.
	ErrNotFound = errors.New("word not found")

	// ErrImport is returned when an import document cannot be parsed or does
	// not have the expected shape. No state is changed in that case.
	ErrImport = errors.New("invalid mastery import")

	// ErrNoWordList is returned by operations that need the master list when
	// none has been loaded.
	ErrNoWordList = errors.New("master word list is not loaded")
)
