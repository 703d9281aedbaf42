// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-enquete/internal/service"
)

// humanizeAuthError turns a login failure into the text shown under the
// form. Causes wrapped for logs never reach the screen.
func humanizeAuthError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidCredentials):
		return service.ErrInvalidCredentials.Error()
	default:
		return service.ErrUnexpected.Error()
	}
}
