package cmd

import (
	"github.com/spf13/cobra"

	wzerrors "github.com/workzen/workzen-cli/internal/errors"
	"github.com/workzen/workzen-cli/internal/hr"
	"github.com/workzen/workzen-cli/internal/tui"
	"github.com/workzen/workzen-cli/internal/validate"
)

func newSignupCmd(app *App) *cobra.Command {
	var req hr.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new company",
		Long: `Register a new company and its admin account on WorkZen.

Signing up does not log you in: the account must verify its email first,
then 'workzen login'.

With no flags an interactive form collects the details.

Examples:
  workzen signup
  workzen signup --company Acme --email owner@acme.com --phone 555-0100 \
    --first-name Ada --last-name Root --password 'Secret@12'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := req.CompanyName == "" && req.Email == "" && req.Password == ""
			if interactive {
				if !tui.ShouldPrompt() {
					return wzerrors.NewValidationError("signup flags are required when not running interactively")
				}
				if err := tui.SignupForm(&req); err != nil {
					return err
				}
			}
			// Flag-driven runs have no separate confirmation field.
			if err := validate.Signup(req, req.Password); err != nil {
				return err
			}
			return app.Controller.Signup(cmd.Context(), req)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.CompanyName, "company", "", "company name")
	flags.StringVar(&req.Email, "email", "", "admin email address")
	flags.StringVar(&req.Phone, "phone", "", "contact phone")
	flags.StringVar(&req.Industry, "industry", "", "industry (optional)")
	flags.StringVar(&req.FirstName, "first-name", "", "admin first name")
	flags.StringVar(&req.LastName, "last-name", "", "admin last name")
	flags.StringVar(&req.Password, "password", "", "admin password")

	return cmd
}

func newVerifyEmailCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify-email <token>",
		Short: "Verify a signup email address",
		Long: `Verify the email address for a new account using the token from the
verification email.

Examples:
  workzen verify-email 4f9a1c...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envelope, err := app.Client.VerifyEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			msg := envelope.Message
			if msg == "" {
				msg = "Email verified. You can now log in."
			}
			app.Notifier.Success(msg)
			return nil
		},
	}
}

func newResendVerificationCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "resend-verification",
		Short: "Resend the signup verification email",
		Long: `Request a fresh verification email for an unverified account.

Examples:
  workzen resend-verification --email owner@acme.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Email("email")(email); err != nil {
				return err
			}
			envelope, err := app.Client.ResendVerification(cmd.Context(), email)
			if err != nil {
				return err
			}
			msg := envelope.Message
			if msg == "" {
				msg = "Verification email sent"
			}
			app.Notifier.Success(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email address (required)")

	return cmd
}
