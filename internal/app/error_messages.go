// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// validators, the services and the terminal UI of the Enquete client.
//
// Keeping them in one place ensures consistent wording on every screen.
package app

const (
	// MsgInvalidField is shown next to a form field whose value fails any of
	// its validation rules.
	MsgInvalidField = "Campo inválido"

	// MsgRequiredField is shown next to a form field left empty.
	MsgRequiredField = "Campo obrigatório"

	// MsgFieldOK is shown next to a form field that passes all of its rules.
	MsgFieldOK = "Tudo certo"

	// MsgInvalidCredentials is shown when the API rejects the email/password
	// pair.
	MsgInvalidCredentials = "Credenciais inválidas"

	// MsgUnexpected is shown for every other login failure: transport errors,
	// unexpected status codes and malformed responses.
	MsgUnexpected = "Algo deu errado. Tente novamente em alguns instantes."

	// MsgSigningIn accompanies the spinner while a login request is pending.
	MsgSigningIn = "Entrando..."
)
