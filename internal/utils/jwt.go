package utils

import (
	"github.com/MKhiriev/go-enquete/models"
	"github.com/golang-jwt/jwt/v5"
)

// ParseAccessToken reads the registered claims of raw without verifying the
// signature: the client does not own the signing key.
//
// Tokens that are not JWTs, or whose claims cannot be decoded, are returned
// with zero claims, so callers can still store and send them.
//
// Example usage:
//
//	token := utils.ParseAccessToken(account.AccessToken)
//	if token.IsExpired(time.Now()) {
//	    // ask the user to log in again
//	}
func ParseAccessToken(raw string) models.AccessToken {
	token := models.AccessToken{Raw: raw}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return token
	}

	token.RegisteredClaims = *claims
	return token
}
