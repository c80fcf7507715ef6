// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable is shown for build metadata the linker did not inject.
const NotAvailable = "N/A"

const shortCommitLen = 7

// AppBuildInfo is the version metadata injected with -ldflags at build time.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo normalises blank values to [NotAvailable].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.commit) }

// ShortCommit is the abbreviated commit hash used in the about window.
func (a AppBuildInfo) ShortCommit() string {
	c := a.BuildCommit()
	if c == NotAvailable || len(c) <= shortCommitLen {
		return c
	}
	return c[:shortCommitLen]
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
