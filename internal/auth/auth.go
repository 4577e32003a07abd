// Package auth checks the demo credential and registration forms. It stands in
// for an identity provider and provides no security.
package auth

import (
	"errors"
)

const (
	DemoEmail    = "admin@example.com"
	DemoPassword = "123456"
	// DemoUserName is the display name stored after a successful login.
	DemoUserName = "Administrator"
)

var ErrRegistrationPending = errors.New("registration is not available yet")

// CredentialError reports a failed login. It is never fatal; the user may retry.
type CredentialError struct {
	Message string
}

func (e *CredentialError) Error() string {
	return e.Message
}

// ValidationError reports a registration form that cannot be submitted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Check accepts exactly the demo credential.
func Check(email, password string) error {
	if email == DemoEmail && password == DemoPassword {
		return nil
	}
	return &CredentialError{Message: "incorrect email or password, use " + DemoEmail + " / " + DemoPassword}
}

type UserType string

const (
	UserTypePassenger UserType = "passenger"
	UserTypeCorporate UserType = "corporate"
)

// RegistrationRequest is the sign-up form
type RegistrationRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirmPassword"`
	Phone           string   `json:"phone"`
	IDCard          string   `json:"idCard"`
	Company         string   `json:"company"`
	UserType        UserType `json:"userType"`
}

// ValidateRegistration rejects mismatched passwords. A valid form still
// resolves to ErrRegistrationPending since nothing accepts registrations.
func ValidateRegistration(req RegistrationRequest) error {
	if req.Password != req.ConfirmPassword {
		return &ValidationError{Field: "confirmPassword", Message: "passwords do not match"}
	}
	return ErrRegistrationPending
}
