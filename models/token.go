// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a stored access token together with the claims that could
// be read from it without verifying the signature.
//
// The client never holds the API signing key, so the claims are advisory:
// they are used only to decide whether a stored session is worth restoring.
// Tokens that are not JWTs are kept with zero claims.
type AccessToken struct {
	// RegisteredClaims holds the standard claim set (sub, exp, iat, ...).
	jwt.RegisteredClaims

	// Raw is the token exactly as it was issued by the API.
	Raw string `json:"-"`
}

// IsExpired reports whether the token carries an "exp" claim that lies at or
// before now. Tokens without an expiry never expire on the client side.
func (t AccessToken) IsExpired(now time.Time) bool {
	if t.ExpiresAt == nil {
		return false
	}

	return !now.Before(t.ExpiresAt.Time)
}

// String returns the raw token. It implements the [fmt.Stringer] interface.
func (t AccessToken) String() string {
	return t.Raw
}
