// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Data read back from the local store, fetched from the word list source or
// supplied in an import document is checked here before the services trust
// its shape.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural checks and cross-record rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
