package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workzen/workzen-cli/internal/hr"
	"github.com/workzen/workzen-cli/internal/ux"
	"github.com/workzen/workzen-cli/internal/validate"
)

func newLeavesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaves",
		Short: "View and apply for leave",
		Long: `List leave applications visible to you and file new ones.

Examples:
  workzen leaves list
  workzen leaves apply --type sick --from 2026-09-01 --to 2026-09-02 --reason "flu"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newLeavesListCmd(app), newLeavesApplyCmd(app))

	return cmd
}

func newLeavesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List leave applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(); err != nil {
				return err
			}

			leaves, err := app.Directory.Leaves(cmd.Context())
			if err != nil {
				return err
			}

			formatter, err := app.Formatter()
			if err != nil {
				return err
			}
			if app.output != "text" {
				return formatter.Format(leaves)
			}
			table := ux.Table{Headers: []string{"Type", "From", "To", "Days", "Status", "Reason"}}
			for _, l := range leaves {
				table.Rows = append(table.Rows, []string{
					l.Type, l.FromDate, l.ToDate, fmt.Sprintf("%d", l.DaysCount), l.Status, l.Reason,
				})
			}
			return formatter.Format(table)
		},
	}
}

func newLeavesApplyCmd(app *App) *cobra.Command {
	var leave hr.Leave

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "File a leave application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(); err != nil {
				return err
			}

			checks := []error{
				validate.NonEmpty("--type")(leave.Type),
				validate.NonEmpty("--from")(leave.FromDate),
				validate.NonEmpty("--to")(leave.ToDate),
			}
			for _, err := range checks {
				if err != nil {
					return err
				}
			}

			created, err := app.Directory.ApplyLeave(cmd.Context(), leave)
			if err != nil {
				return err
			}
			app.Notifier.Success(fmt.Sprintf("Leave application filed (%s to %s, status %s)",
				created.FromDate, created.ToDate, created.Status))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&leave.Type, "type", "", "leave type (e.g. sick, casual, earned)")
	flags.StringVar(&leave.FromDate, "from", "", "first day (YYYY-MM-DD)")
	flags.StringVar(&leave.ToDate, "to", "", "last day (YYYY-MM-DD)")
	flags.StringVar(&leave.Reason, "reason", "", "reason (optional)")

	return cmd
}
