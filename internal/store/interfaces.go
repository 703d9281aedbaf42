// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists client state between runs in a local SQLite file.
//
// The client needs browser-style local storage and nothing more: string
// values addressed by string keys. [KeyValueStorage] is that contract and
// [NewLocalStorageRepository] is its SQLite implementation.
package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccessTokenKey is the key the access token of the current account is
// stored under.
const AccessTokenKey = "accessToken"

// KeyValueStorage stores string values by key.
type KeyValueStorage interface {
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// GetItem returns the value stored under key, or [ErrItemNotFound].
	GetItem(ctx context.Context, key string) (string, error)

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
}
