package cmd

import (
	"github.com/spf13/cobra"

	wzerrors "github.com/workzen/workzen-cli/internal/errors"
	"github.com/workzen/workzen-cli/internal/hr"
	"github.com/workzen/workzen-cli/internal/tui"
	"github.com/workzen/workzen-cli/internal/validate"
)

func newLoginCmd(app *App) *cobra.Command {
	var req hr.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to WorkZen",
		Long: `Log in to the WorkZen backend and store the session token locally.

With no flags an interactive prompt collects the credentials. In scripts
pass --username and --password explicitly.

Examples:
  workzen login
  workzen login --username demoadmin --password 'Admin@123'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Username == "" || req.Password == "" {
				if !tui.ShouldPrompt() {
					return wzerrors.NewValidationError("--username and --password are required when not running interactively")
				}
				if err := tui.LoginForm(&req); err != nil {
					return err
				}
			}
			if err := validate.Login(req); err != nil {
				return err
			}
			return app.Controller.Login(cmd.Context(), req)
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "username or email")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "password (prompted when omitted)")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard stored credentials",
		Long: `Log out of WorkZen and remove the locally stored token, user, and
company data. Safe to run when not logged in.

Examples:
  workzen logout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			app.Controller.Logout()
			return nil
		},
	}
}
