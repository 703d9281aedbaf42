package models

// Names of the login form fields. They double as keys of [ValidationParams]
// and as JSON keys of [AuthenticationParams].
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// AuthenticationParams are the credentials sent to the remote authentication
// endpoint as the POST body.
type AuthenticationParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidationParams returns the credentials as form values keyed by field name.
func (p AuthenticationParams) ValidationParams() ValidationParams {
	return ValidationParams{
		FieldEmail:    p.Email,
		FieldPassword: p.Password,
	}
}
