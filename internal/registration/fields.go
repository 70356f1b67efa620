package registration

import "strings"

// Field names a sign-up form input.
type Field string

const (
	FieldUsername        Field = "username"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Fields lists the form inputs in display order.
func Fields() []Field {
	return []Field{FieldUsername, FieldEmail, FieldPassword, FieldConfirmPassword}
}

// ParseField resolves a field name as sent by the browser.
func ParseField(name string) (Field, bool) {
	name = strings.TrimSpace(name)
	for _, field := range Fields() {
		if string(field) == name {
			return field, true
		}
	}
	return "", false
}

// FormFields holds the current values of one sign-up form.
type FormFields struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Value returns the value stored for field.
func (f FormFields) Value(field Field) string {
	switch field {
	case FieldUsername:
		return f.Username
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	case FieldConfirmPassword:
		return f.ConfirmPassword
	default:
		return ""
	}
}

// With returns a copy of f with field set to value.
func (f FormFields) With(field Field, value string) FormFields {
	switch field {
	case FieldUsername:
		f.Username = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	}
	return f
}

// NewUser is the payload sent to the user API. The password confirmation
// never leaves the form.
type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser projects the form into the registration payload.
func (f FormFields) NewUser() NewUser {
	return NewUser{
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
	}
}
