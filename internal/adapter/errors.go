// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrLoadFailure is returned when the master word list cannot be fetched,
// decoded or validated.
var ErrLoadFailure = errors.New("word list load failure")

// Causes wrapped together with ErrLoadFailure.
var (
	ErrWordListNotFound  = errors.New("word list not found at source")
	ErrAccessDenied      = errors.New("access to word list denied")
	ErrRateLimited       = errors.New("word list source is rate limiting requests")
	ErrSourceUnavailable = errors.New("word list source unavailable")
	ErrUnsupportedSource = errors.New("unsupported word list source")
)
