// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// unknownBuildValue is what the binaries print for metadata the linker did
// not set.
const unknownBuildValue = "N/A"

// AppBuildInfo is the version, date and commit linked into a binary. Unset
// values are empty.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo normalizes the linker values: blanks and "N/A" become
// empty.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: normalizeBuildValue(version),
		date:    normalizeBuildValue(date),
		commit:  normalizeBuildValue(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

func normalizeBuildValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, unknownBuildValue) {
		return ""
	}
	return v
}
