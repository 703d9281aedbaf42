package models

// ValidationParams maps a form field name to its current value. The form
// rebuilds it on every change; validators only read it.
type ValidationParams map[string]string

// Value returns the value of field, or an empty string when the field is
// absent. A nil ValidationParams behaves as an empty form.
func (p ValidationParams) Value(field string) string {
	return p[field]
}

// Has reports whether field is present, even if its value is empty.
func (p ValidationParams) Has(field string) bool {
	_, ok := p[field]
	return ok
}
