// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
	"github.com/MKhiriev/go-hsk-keeper/internal/store"
)

// ConsentKey is the storage key of the storage notice acknowledgement.
const ConsentKey = "consent"

const consentAccepted = "accepted"

type consentService struct {
	storage store.LocalStorage
	logger  *logger.Logger
}

func NewConsentService(storage store.LocalStorage, logger *logger.Logger) ConsentService {
	return &consentService{storage: storage, logger: logger}
}

func (c *consentService) Given(ctx context.Context) bool {
	value, ok, err := c.storage.GetItem(ctx, ConsentKey)
	if err != nil {
		c.logger.Err(err).Str("func", "consentService.Given").Msg("storage read failed")
		return false
	}
	return ok && value == consentAccepted
}

func (c *consentService) Give(ctx context.Context) error {
	if err := c.storage.SetItem(ctx, ConsentKey, consentAccepted); err != nil {
		return fmt.Errorf("save consent: %w", err)
	}
	return nil
}
