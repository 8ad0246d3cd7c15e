package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workzen/workzen-cli/internal/ux"
)

func newAttendanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "View and record attendance",
		Long: `View attendance records and record your own check-in and check-out.

Examples:
  workzen attendance list
  workzen attendance list --date 2026-08-28
  workzen attendance check-in
  workzen attendance check-out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newAttendanceListCmd(app),
		newAttendanceCheckInCmd(app),
		newAttendanceCheckOutCmd(app),
	)

	return cmd
}

func newAttendanceListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(); err != nil {
				return err
			}

			records, err := app.Directory.Attendance(cmd.Context(), date)
			if err != nil {
				return err
			}

			formatter, err := app.Formatter()
			if err != nil {
				return err
			}
			if app.output != "text" {
				return formatter.Format(records)
			}
			table := ux.Table{Headers: []string{"Date", "User", "Check-in", "Check-out", "Hours", "Status"}}
			for _, r := range records {
				table.Rows = append(table.Rows, []string{
					r.Date, r.UserID, r.CheckInTime, r.CheckOutTime, r.WorkHours, r.Status,
				})
			}
			return formatter.Format(table)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "filter to a date (YYYY-MM-DD)")

	return cmd
}

func newAttendanceCheckInCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check-in",
		Short: "Record your check-in for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(); err != nil {
				return err
			}

			record, err := app.Directory.CheckIn(cmd.Context())
			if err != nil {
				return err
			}
			app.Notifier.Success(fmt.Sprintf("Checked in at %s", record.CheckInTime))
			return nil
		},
	}
}

func newAttendanceCheckOutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check-out",
		Short: "Record your check-out for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(); err != nil {
				return err
			}

			record, err := app.Directory.CheckOut(cmd.Context())
			if err != nil {
				return err
			}
			app.Notifier.Success(fmt.Sprintf("Checked out at %s", record.CheckOutTime))
			return nil
		},
	}
}
