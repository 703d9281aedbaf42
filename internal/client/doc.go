// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It decides where the terminal UI starts, from the session stored by a
// previous run, and owns the process lifecycle.
package client
