package cmd

import (
	"github.com/spf13/cobra"

	"github.com/workzen/workzen-cli/internal/hr"
	"github.com/workzen/workzen-cli/internal/ux"
)

func newUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the company's employees",
		Long: `List the employees of your company. Requires the admin or hr role.

Examples:
  workzen users
  workzen users -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(hr.RoleAdmin, hr.RoleHR); err != nil {
				return err
			}

			users, err := app.Directory.Users(cmd.Context())
			if err != nil {
				return err
			}

			formatter, err := app.Formatter()
			if err != nil {
				return err
			}
			if app.output != "text" {
				return formatter.Format(users)
			}
			table := ux.Table{Headers: []string{"Username", "Name", "Email", "Role", "Status"}}
			for _, u := range users {
				table.Rows = append(table.Rows, []string{
					u.Username, u.FullName(), u.Email, string(u.Role), string(u.Status),
				})
			}
			return formatter.Format(table)
		},
	}
}

func newDepartmentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "List departments",
		Long: `List the company's departments. Requires the admin or hr role.

Examples:
  workzen departments`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(hr.RoleAdmin, hr.RoleHR); err != nil {
				return err
			}

			departments, err := app.Directory.Departments(cmd.Context())
			if err != nil {
				return err
			}

			formatter, err := app.Formatter()
			if err != nil {
				return err
			}
			if app.output != "text" {
				return formatter.Format(departments)
			}
			table := ux.Table{Headers: []string{"Name", "Description", "Active"}}
			for _, d := range departments {
				table.Rows = append(table.Rows, []string{d.Name, d.Description, boolWord(d.IsActive)})
			}
			return formatter.Format(table)
		},
	}
}

func newCompaniesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "companies",
		Short: "List registered companies (super admin)",
		Long: `List every company registered on the platform. Only accounts carrying
the super-admin flag can see this; the role name alone is not enough.

Examples:
  workzen companies`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.CheckSuperAdmin(); err != nil {
				return err
			}

			companies, err := app.Directory.Companies(cmd.Context())
			if err != nil {
				return err
			}

			formatter, err := app.Formatter()
			if err != nil {
				return err
			}
			if app.output != "text" {
				return formatter.Format(companies)
			}
			table := ux.Table{Headers: []string{"Name", "Email", "Industry", "Approved", "Active"}}
			for _, c := range companies {
				table.Rows = append(table.Rows, []string{
					c.Name, c.Email, c.Industry, boolWord(c.IsApproved), boolWord(c.IsActive),
				})
			}
			return formatter.Format(table)
		},
	}
}
