// Package tui provides the interactive terminal forms for auth flows.
package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/workzen/workzen-cli/internal/hr"
	"github.com/workzen/workzen-cli/internal/validate"
)

// LoginForm prompts for credentials. Fields left blank by flags are the
// usual entry point; pre-filled values survive as defaults.
func LoginForm(req *hr.LoginRequest) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Placeholder("username or email").
				Validate(validate.NonEmpty("username")).
				Value(&req.Username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(validate.NonEmpty("password")).
				Value(&req.Password),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("login prompt failed: %w", err)
	}
	return nil
}

// SignupForm prompts for the company registration fields.
func SignupForm(req *hr.SignupRequest) error {
	var confirm string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Company name").
				Validate(validate.NonEmpty("company name")).
				Value(&req.CompanyName),
			huh.NewInput().
				Title("Email").
				Placeholder("owner@example.com").
				Validate(validate.Email("email")).
				Value(&req.Email),
			huh.NewInput().
				Title("Phone").
				Validate(validate.NonEmpty("phone")).
				Value(&req.Phone),
			huh.NewInput().
				Title("Industry").
				Placeholder("optional").
				Value(&req.Industry),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("First name").
				Validate(validate.NonEmpty("first name")).
				Value(&req.FirstName),
			huh.NewInput().
				Title("Last name").
				Validate(validate.NonEmpty("last name")).
				Value(&req.LastName),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(validate.Password("password")).
				Value(&req.Password),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Validate(validate.Matches("password confirmation", &req.Password)).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("signup prompt failed: %w", err)
	}
	return nil
}

// PasswordChangeForm prompts for the old and new passwords.
func PasswordChangeForm(req *hr.ChangePasswordRequest) error {
	var confirm string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current password").
				EchoMode(huh.EchoModePassword).
				Validate(validate.NonEmpty("current password")).
				Value(&req.OldPassword),
			huh.NewInput().
				Title("New password").
				EchoMode(huh.EchoModePassword).
				Validate(validate.Password("new password")).
				Value(&req.NewPassword),
			huh.NewInput().
				Title("Confirm new password").
				EchoMode(huh.EchoModePassword).
				Validate(validate.Matches("password confirmation", &req.NewPassword)).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("password prompt failed: %w", err)
	}
	return nil
}

// Confirm asks a yes/no question.
func Confirm(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}
