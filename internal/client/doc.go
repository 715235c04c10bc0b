// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI to the client services and keeps the gallery
// refresh job running for as long as the UI is open.
package client
