// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountModel is the decoded body of a successful authentication response.
// It is the only piece of account data the client keeps between runs: the
// access token is persisted locally and the name is shown on the home page.
type AccountModel struct {
	// AccessToken is the opaque (usually JWT) token issued by the API.
	AccessToken string `json:"accessToken"`

	// Name is the display name of the authenticated account. The API may
	// omit it.
	Name string `json:"name,omitempty"`
}
