// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"maps"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-hsk-keeper/models"
)

// memStorage is an in-memory store.LocalStorage.
type memStorage struct {
	mu    sync.Mutex
	items map[string]string
	sets  int
}

func newMemStorage() *memStorage {
	return &memStorage{items: make(map[string]string)}
}

func (m *memStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memStorage) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	m.sets++
	return nil
}

func (m *memStorage) ReplaceAll(_ context.Context, items map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = maps.Clone(items)
	if m.items == nil {
		m.items = make(map[string]string)
	}
	return nil
}

// keys returns the stored keys in ascending order.
func (m *memStorage) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.items))
}

func (m *memStorage) putLevel(t *testing.T, level models.LevelKey, records []models.WordRecord) {
	t.Helper()
	payload, err := json.Marshal(records)
	require.NoError(t, err)
	m.items[level.String()] = string(payload)
}

func (m *memStorage) level(t *testing.T, level models.LevelKey) []models.WordRecord {
	t.Helper()
	raw, ok := m.items[level.String()]
	require.True(t, ok, "level %s is not stored", level)
	var records []models.WordRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &records))
	return records
}

func masterList() []models.RawWord {
	return []models.RawWord{
		{Word: "爱", Pronunciation: "ài", Definition: "love", HSK: 1},
		{Word: "八", Pronunciation: "bā", Definition: "eight", HSK: 1},
		{Word: "爸爸", Pronunciation: "bàba", Definition: "dad", HSK: 1},
		{Word: "吧", Pronunciation: "ba", Definition: "particle", HSK: 2},
		{Word: "白", Pronunciation: "bái", Definition: "white", HSK: 2},
		{Word: "阿姨", Pronunciation: "āyí", Definition: "aunt", HSK: 3},
	}
}
