// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-hsk-keeper/models"

type consentLoadedMsg struct {
	given bool
}

type consentSavedMsg struct {
	err error
}

type gridLoadedMsg struct {
	level   models.LevelKey
	records []models.WordRecord
}

type masteryChangedMsg struct {
	word  string
	value int
	err   error
}

type statsLoadedMsg struct {
	stats models.Statistics
}

type exportDoneMsg struct {
	path string
	err  error
}

type importDoneMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type quizPoolLoadedMsg struct {
	pool []models.WordRecord
}

type copiedMsg struct{}

type errMsg struct {
	err error
}

type clearStatusMsg struct{}
