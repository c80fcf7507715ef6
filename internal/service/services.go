// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math/rand/v2"

	"github.com/MKhiriev/go-hsk-keeper/internal/config"
	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
	"github.com/MKhiriev/go-hsk-keeper/internal/store"
	"github.com/MKhiriev/go-hsk-keeper/internal/validators"
)

// ClientServices groups the services used by the TUI and the headless
// commands.
type ClientServices struct {
	MasteryService MasteryService
	QuizService    QuizService
	ConsentService ConsentService
	// BackupJob is nil when backups are disabled.
	BackupJob BackupJob
}

func NewClientServices(storages *store.ClientStorages, workers config.ClientWorkers, rnd *rand.Rand, logger *logger.Logger) *ClientServices {
	mastery := NewMasteryService(storages.LocalStorage, validators.NewWordValidator(), logger.Component("mastery"))

	services := &ClientServices{
		MasteryService: mastery,
		QuizService:    NewQuizService(rnd, logger.Component("quiz")),
		ConsentService: NewConsentService(storages.LocalStorage, logger.Component("consent")),
	}

	if workers.BackupInterval > 0 && workers.BackupPath != "" {
		services.BackupJob = NewBackupJob(mastery, workers.BackupPath, logger.Component("backup"))
	}

	return services
}
