// Package validate holds input validation for auth flows. Validators are
// plain func(string) error so interactive form fields and flag-driven
// commands share the same rules.
package validate

import (
	"fmt"
	"net/mail"
	"strings"

	wzerrors "github.com/workzen/workzen-cli/internal/errors"
	"github.com/workzen/workzen-cli/internal/hr"
)

// MinPasswordLength matches the server-side password policy.
const MinPasswordLength = 8

// NonEmpty rejects blank input.
func NonEmpty(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return wzerrors.NewValidationError(fmt.Sprintf("%s is required", field))
		}
		return nil
	}
}

// MinLength rejects input shorter than n characters.
func MinLength(field string, n int) func(string) error {
	return func(value string) error {
		if len(value) < n {
			return wzerrors.NewValidationError(fmt.Sprintf("%s must be at least %d characters", field, n))
		}
		return nil
	}
}

// Email rejects input that is not an addr-spec.
func Email(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return wzerrors.NewValidationError(fmt.Sprintf("%s is required", field))
		}
		if _, err := mail.ParseAddress(value); err != nil {
			return wzerrors.NewValidationError(fmt.Sprintf("%s is not a valid email address", field))
		}
		return nil
	}
}

// Password applies the password policy.
func Password(field string) func(string) error {
	return All(NonEmpty(field), MinLength(field, MinPasswordLength))
}

// Matches rejects input that differs from *other. The pointer is read at
// validation time, so it can target a form field filled in earlier.
func Matches(field string, other *string) func(string) error {
	return func(value string) error {
		if value != *other {
			return wzerrors.NewValidationError(fmt.Sprintf("%s does not match", field))
		}
		return nil
	}
}

// All chains validators, returning the first violation.
func All(fns ...func(string) error) func(string) error {
	return func(value string) error {
		for _, fn := range fns {
			if err := fn(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Login checks a login request before it goes on the wire.
func Login(req hr.LoginRequest) error {
	if err := NonEmpty("username")(req.Username); err != nil {
		return err
	}
	return NonEmpty("password")(req.Password)
}

// Signup checks a signup request and its password confirmation.
func Signup(req hr.SignupRequest, confirm string) error {
	checks := []error{
		NonEmpty("company name")(req.CompanyName),
		Email("email")(req.Email),
		NonEmpty("phone")(req.Phone),
		NonEmpty("first name")(req.FirstName),
		NonEmpty("last name")(req.LastName),
		Password("password")(req.Password),
		Matches("password confirmation", &req.Password)(confirm),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// PasswordChange checks a change-password request and its confirmation.
func PasswordChange(req hr.ChangePasswordRequest, confirm string) error {
	if err := NonEmpty("current password")(req.OldPassword); err != nil {
		return err
	}
	if err := Password("new password")(req.NewPassword); err != nil {
		return err
	}
	if req.NewPassword == req.OldPassword {
		return wzerrors.NewValidationError("new password must differ from the current password")
	}
	return Matches("password confirmation", &req.NewPassword)(confirm)
}
