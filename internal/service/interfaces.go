// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client use cases: authenticating against the
// Enquete API and keeping the resulting session on disk.
package service

import (
	"context"

	"github.com/MKhiriev/go-enquete/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Authentication exchanges credentials for an account.
type Authentication interface {
	// Auth sends params to the API once. It returns [ErrInvalidCredentials]
	// when the API rejects them and an error matching [ErrUnexpected] for any
	// other failure.
	Auth(ctx context.Context, params models.AuthenticationParams) (models.AccountModel, error)
}

// Session keeps the authenticated account between runs.
type Session interface {
	// SetCurrentAccount persists the account's access token.
	SetCurrentAccount(ctx context.Context, account models.AccountModel) error

	// CurrentAccessToken returns the stored token, or [ErrNoSession] when
	// there is none or it has expired.
	CurrentAccessToken(ctx context.Context) (models.AccessToken, error)

	// CurrentAccount returns the stored account, or [ErrNoSession].
	CurrentAccount(ctx context.Context) (models.AccountModel, error)

	// Logout forgets the stored account.
	Logout(ctx context.Context) error
}
