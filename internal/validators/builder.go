package validators

// Builder assembles the ordered rules of a single field.
//
// Builder is a value: every chained call returns a new Builder and leaves
// the receiver untouched, so a partially built chain can be shared and
// extended in different directions without aliasing.
type Builder struct {
	field       string
	validations []FieldValidation
}

// Field starts an empty chain for the named field.
func Field(name string) Builder {
	return Builder{field: name}
}

// Required appends a [RequiredFieldValidation].
func (b Builder) Required() Builder {
	return b.with(NewRequiredFieldValidation(b.field))
}

// Email appends an [EmailValidation].
func (b Builder) Email() Builder {
	return b.with(NewEmailValidation(b.field))
}

// Min appends a [MinLengthValidation] with the given minimum.
func (b Builder) Min(length int) Builder {
	return b.with(NewMinLengthValidation(b.field, length))
}

// Build returns the rules in the order they were added. The returned slice
// is owned by the caller.
func (b Builder) Build() []FieldValidation {
	out := make([]FieldValidation, len(b.validations))
	copy(out, b.validations)
	return out
}

func (b Builder) with(v FieldValidation) Builder {
	validations := make([]FieldValidation, len(b.validations), len(b.validations)+1)
	copy(validations, b.validations)

	return Builder{
		field:       b.field,
		validations: append(validations, v),
	}
}

// Flatten concatenates the chains of several fields, keeping both the order
// of the chains and the order inside each chain.
func Flatten(chains ...[]FieldValidation) []FieldValidation {
	size := 0
	for _, chain := range chains {
		size += len(chain)
	}

	out := make([]FieldValidation, 0, size)
	for _, chain := range chains {
		out = append(out, chain...)
	}
	return out
}
