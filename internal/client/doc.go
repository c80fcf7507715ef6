// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It loads the master word list, seeds the local store on first run, and then
// either runs one headless command (export, import, reset) or hands control
// to the terminal UI with the periodic backup job running alongside.
package client
