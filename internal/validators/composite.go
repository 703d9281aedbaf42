package validators

import "github.com/MKhiriev/go-enquete/models"

// ValidationComposite runs the rules registered for a field and reports the
// first failure. Rules are checked in the order they were given, and
// checking stops at the first failure, so when a value breaks several rules
// the earliest registered one decides the message.
type ValidationComposite struct {
	validations []FieldValidation
}

// NewValidationComposite returns a composite over a copy of validations.
func NewValidationComposite(validations ...FieldValidation) *ValidationComposite {
	owned := make([]FieldValidation, len(validations))
	copy(owned, validations)

	return &ValidationComposite{validations: owned}
}

// Validate implements [Validation]. It returns an empty string when every
// rule of fieldName passes or when no rule is registered for it.
func (c *ValidationComposite) Validate(fieldName string, input models.ValidationParams) string {
	for _, v := range c.validations {
		if v.Field() != fieldName {
			continue
		}
		if err := v.Validate(input); err != nil {
			return err.Error()
		}
	}
	return ""
}

// Fields returns the distinct field names the composite has rules for, in
// the order each was first registered.
func (c *ValidationComposite) Fields() []string {
	seen := make(map[string]struct{}, len(c.validations))
	fields := make([]string, 0, len(c.validations))

	for _, v := range c.validations {
		if _, ok := seen[v.Field()]; ok {
			continue
		}
		seen[v.Field()] = struct{}{}
		fields = append(fields, v.Field())
	}
	return fields
}

// NewLoginValidation returns the composite used by the login page:
// the e-mail is required and must look like an address, the password is
// required and must have at least five characters.
func NewLoginValidation() *ValidationComposite {
	return NewValidationComposite(Flatten(
		Field(models.FieldEmail).Required().Email().Build(),
		Field(models.FieldPassword).Required().Min(5).Build(),
	)...)
}
