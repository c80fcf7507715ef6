// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "a.db"}}},
		&StructuredConfig{Source: Source{WordList: "words.json"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "a.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "words.json", cfg.Source.WordList)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides an
// earlier one while zero fields leave it untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "override.db"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultWordList, cfg.Source.WordList)
	assert.Equal(t, DefaultRequestTimeout, cfg.Source.RequestTimeout)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDefaults())
	require.Len(t, b.configs, 1)
	assert.Equal(t, DefaultDSN, b.configs[0].Storage.DB.DSN)
	assert.Equal(t, DefaultLogLevel, b.configs[0].App.LogLevel)
	assert.Zero(t, b.configs[0].Workers.BackupInterval)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DSN":   "env.db",
		"SOURCE_WORD_LIST": "env.json",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, "env.json", b.configs[0].Source.WordList)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SOURCE_REQUEST_TIMEOUT": "never"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-d", "flag.db"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag.db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "json.db"
	payload.Workers.BackupInterval = Duration(time.Minute)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
	assert.Equal(t, time.Minute, b.configs[1].Workers.BackupInterval)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.LogFile = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.LogFile)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_DefaultsAreValid(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultWordList, cfg.Source.WordList)
	assert.Equal(t, DefaultRequestTimeout, cfg.Source.RequestTimeout)
	assert.False(t, cfg.Command.Headless())
}

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_DB_DSN": "env.db"})

	cfg, err := GetClientConfig([]string{"-d", "flag.db", "-reset"})
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Command.Headless())
}

func TestGetClientConfig_JSONOverridesFlags(t *testing.T) {
	clearEnvVars(t)
	payload := StructuredJSONConfig{}
	payload.Source.WordList = "from-json.json"
	path := writeTempJSONConfig(t, payload)

	cfg, err := GetClientConfig([]string{"-w", "from-flag.json", "-c", path})
	require.NoError(t, err)
	assert.Equal(t, "from-json.json", cfg.Source.WordList)
}

func TestGetClientConfig_InvalidCombination(t *testing.T) {
	clearEnvVars(t)

	_, err := GetClientConfig([]string{"-backup-interval", "1m"})
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}
