package validators

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-enquete/models"
)

// emailTag is the validator tag checked by EmailValidation.
const emailTag = "email"

var validate = validator.New()

// RequiredFieldValidation fails when the field is absent or empty.
type RequiredFieldValidation struct {
	field string
}

// NewRequiredFieldValidation returns a required rule for field.
func NewRequiredFieldValidation(field string) RequiredFieldValidation {
	return RequiredFieldValidation{field: field}
}

// Field implements [FieldValidation].
func (v RequiredFieldValidation) Field() string {
	return v.field
}

// Validate implements [FieldValidation].
func (v RequiredFieldValidation) Validate(input models.ValidationParams) error {
	if input.Value(v.field) == "" {
		return ErrRequiredField
	}
	return nil
}

// EmailValidation fails when a non-empty value does not look like an e-mail
// address. An empty value passes: emptiness is reported by
// RequiredFieldValidation, so an optional e-mail field stays optional.
type EmailValidation struct {
	field string
}

// NewEmailValidation returns an e-mail shape rule for field.
func NewEmailValidation(field string) EmailValidation {
	return EmailValidation{field: field}
}

// Field implements [FieldValidation].
func (v EmailValidation) Field() string {
	return v.field
}

// Validate implements [FieldValidation].
func (v EmailValidation) Validate(input models.ValidationParams) error {
	value := input.Value(v.field)
	if value == "" {
		return nil
	}
	if err := validate.Var(value, emailTag); err != nil {
		return ErrInvalidField
	}
	return nil
}

// MinLengthValidation fails when the value has fewer characters than the
// configured minimum. Length is counted in runes, so "ação" has length 4.
type MinLengthValidation struct {
	field     string
	minLength int
}

// NewMinLengthValidation returns a minimum length rule for field.
func NewMinLengthValidation(field string, minLength int) MinLengthValidation {
	return MinLengthValidation{field: field, minLength: minLength}
}

// Field implements [FieldValidation].
func (v MinLengthValidation) Field() string {
	return v.field
}

// MinLength returns the configured minimum.
func (v MinLengthValidation) MinLength() int {
	return v.minLength
}

// Validate implements [FieldValidation].
func (v MinLengthValidation) Validate(input models.ValidationParams) error {
	if utf8.RuneCountInString(input.Value(v.field)) < v.minLength {
		return ErrInvalidField
	}
	return nil
}
