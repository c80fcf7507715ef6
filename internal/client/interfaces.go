// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-hsk-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end started when no headless command is given.
// master is nil when the word list could not be loaded.
type UI interface {
	Run(ctx context.Context, master []models.RawWord) error
}
