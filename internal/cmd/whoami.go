package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/workzen/workzen-cli/internal/token"
	"github.com/workzen/workzen-cli/internal/ux"
)

type whoamiOutput struct {
	Username     string `json:"username" yaml:"username"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
	Email        string `json:"email,omitempty" yaml:"email,omitempty"`
	Role         string `json:"role" yaml:"role"`
	IsSuperAdmin bool   `json:"is_super_admin" yaml:"is_super_admin"`
	Company      string `json:"company,omitempty" yaml:"company,omitempty"`
	TokenExpires string `json:"token_expires,omitempty" yaml:"token_expires,omitempty"`
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Long: `Show who is logged in, their role, and when the stored token expires.

Examples:
  workzen whoami
  workzen whoami -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(); err != nil {
				return err
			}

			snap := app.Controller.Snapshot()
			out := whoamiOutput{
				Username:     snap.User.Username,
				Name:         snap.User.FullName(),
				Email:        snap.User.Email,
				Role:         string(snap.User.Role),
				IsSuperAdmin: snap.User.IsSuperAdmin,
			}
			if snap.Company != nil {
				out.Company = snap.Company.Name
			}
			if raw, ok := app.Store.Token(); ok {
				if info, err := token.Peek(raw); err == nil && !info.ExpiresAt.IsZero() {
					out.TokenExpires = info.ExpiresAt.Local().Format(time.RFC3339)
					if info.Expired(time.Now()) {
						app.Notifier.Info("The stored token has expired; the next request will ask you to log in again")
					}
				}
			}

			formatter, err := app.Formatter()
			if err != nil {
				return err
			}
			if app.output != "text" {
				return formatter.Format(out)
			}
			rows := [][]string{
				{"Username", out.Username},
				{"Name", out.Name},
				{"Email", out.Email},
				{"Role", out.Role},
				{"Super admin", boolWord(out.IsSuperAdmin)},
			}
			if out.Company != "" {
				rows = append(rows, []string{"Company", out.Company})
			}
			if out.TokenExpires != "" {
				rows = append(rows, []string{"Token expires", out.TokenExpires})
			}
			return formatter.Format(ux.Table{Headers: []string{"Field", "Value"}, Rows: rows})
		},
	}
}

func boolWord(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
