// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"os"

	"github.com/MKhiriev/go-hsk-keeper/internal/service"
)

// humanizeError turns service errors into a notice for the error overlay.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrImport):
		return "The file is not a valid mastery export. Nothing was changed."
	case errors.Is(err, service.ErrNotFound):
		return "This word is no longer in its level. Reload the screen."
	case errors.Is(err, service.ErrNoWordList):
		return "The word list is not loaded, so progress cannot be reset. Check the word list source and restart."
	case errors.Is(err, os.ErrNotExist):
		return "File not found: " + err.Error()
	case errors.Is(err, os.ErrPermission):
		return "Permission denied: " + err.Error()
	}

	return err.Error()
}
