package cmd

import (
	"github.com/spf13/cobra"

	"github.com/workzen/workzen-cli/internal/hr"
	"github.com/workzen/workzen-cli/internal/ux"
)

func newPayrollCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "View payroll runs and salary structures",
		Long: `View payroll runs and salary structures. Requires the admin or payroll
role.

Examples:
  workzen payroll runs
  workzen payroll salary --user u42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newPayrollRunsCmd(app), newPayrollSalaryCmd(app))

	return cmd
}

func newPayrollRunsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List payroll runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(hr.RoleAdmin, hr.RolePayroll); err != nil {
				return err
			}

			payruns, err := app.Directory.Payruns(cmd.Context())
			if err != nil {
				return err
			}

			formatter, err := app.Formatter()
			if err != nil {
				return err
			}
			if app.output != "text" {
				return formatter.Format(payruns)
			}
			table := ux.Table{Headers: []string{"Period", "Status", "Run by", "Net total"}}
			for _, p := range payruns {
				table.Rows = append(table.Rows, []string{p.Period, p.Status, p.RunBy, p.NetTotal})
			}
			return formatter.Format(table)
		},
	}
}

func newPayrollSalaryCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Show a user's salary structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(hr.RoleAdmin, hr.RolePayroll); err != nil {
				return err
			}

			if userID == "" {
				userID = app.Controller.Snapshot().User.ID
			}
			structure, err := app.Directory.SalaryStructure(cmd.Context(), userID)
			if err != nil {
				return err
			}

			formatter, err := app.Formatter()
			if err != nil {
				return err
			}
			if app.output != "text" {
				return formatter.Format(structure)
			}
			table := ux.Table{
				Headers: []string{"Component", "Amount"},
				Rows: [][]string{
					{"Basic", structure.Basic},
					{"HRA", structure.HRA},
					{"Allowances", structure.Allowances},
					{"Deductions", structure.Deductions},
					{"Net", structure.Net},
				},
			}
			return formatter.Format(table)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID (defaults to yourself)")

	return cmd
}
