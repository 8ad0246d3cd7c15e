package cmd

import (
	"github.com/spf13/cobra"

	wzerrors "github.com/workzen/workzen-cli/internal/errors"
	"github.com/workzen/workzen-cli/internal/hr"
	"github.com/workzen/workzen-cli/internal/tui"
	"github.com/workzen/workzen-cli/internal/validate"
)

func newPasswdCmd(app *App) *cobra.Command {
	var req hr.ChangePasswordRequest

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change your password",
		Long: `Change the password of the logged-in account.

With no flags an interactive prompt collects the passwords.

Examples:
  workzen passwd
  workzen passwd --current 'Old@12345' --new 'New@12345'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(); err != nil {
				return err
			}

			if req.OldPassword == "" || req.NewPassword == "" {
				if !tui.ShouldPrompt() {
					return wzerrors.NewValidationError("--current and --new are required when not running interactively")
				}
				if err := tui.PasswordChangeForm(&req); err != nil {
					return err
				}
			}
			if err := validate.PasswordChange(req, req.NewPassword); err != nil {
				return err
			}
			return app.Controller.ChangePassword(cmd.Context(), req)
		},
	}

	cmd.Flags().StringVar(&req.OldPassword, "current", "", "current password")
	cmd.Flags().StringVar(&req.NewPassword, "new", "", "new password")

	return cmd
}
