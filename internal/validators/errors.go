// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyWord      = errors.New("word is required")
	ErrInvalidHSK     = errors.New("invalid HSK level")
	ErrInvalidMastery = errors.New("invalid mastery value")
	ErrDuplicateWord  = errors.New("duplicate word in level")
	ErrEmptyWordList  = errors.New("word list cannot be empty")
)
