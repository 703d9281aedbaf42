// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the form validation used by the login page.
//
// Core concepts:
//   - FieldValidation: a single rule bound to one field name at construction
//     (required, e-mail shape, minimum length).
//   - Builder: a fluent, immutable way to assemble the ordered rules of a field.
//   - ValidationComposite: runs the rules of a field in insertion order and
//     returns the first failure message.
//
// Usage:
//
//	v := validators.NewValidationComposite(validators.Flatten(
//		validators.Field("email").Required().Email().Build(),
//		validators.Field("password").Required().Min(5).Build(),
//	)...)
//	msg := v.Validate("email", models.ValidationParams{"email": ""}) // "Campo inválido"
//
// Rule failures are values, never panics: an empty message means the field is valid.
package validators

import "github.com/MKhiriev/go-enquete/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/validation_mock.go -package=mock

// FieldValidation is a single check over one form field.
type FieldValidation interface {
	// Field returns the name of the field the rule was built for.
	Field() string

	// Validate reads the rule's field from input and returns ErrInvalidField
	// when the value is unacceptable, or nil otherwise.
	Validate(input models.ValidationParams) error
}

// Validation is the contract the view depends on: given a field name and the
// whole form, it returns the message to show for that field, or an empty
// string when the field is valid.
type Validation interface {
	Validate(fieldName string, input models.ValidationParams) string
}
