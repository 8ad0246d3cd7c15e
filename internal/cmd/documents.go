package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/workzen/workzen-cli/internal/ux"
)

func newDocumentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "documents",
		Short: "List HR documents",
		Long: `List the HR documents visible to you.

Examples:
  workzen documents`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(); err != nil {
				return err
			}

			documents, err := app.Directory.Documents(cmd.Context())
			if err != nil {
				return err
			}

			formatter, err := app.Formatter()
			if err != nil {
				return err
			}
			if app.output != "text" {
				return formatter.Format(documents)
			}
			table := ux.Table{Headers: []string{"Name", "Category", "Uploaded", "URL"}}
			for _, d := range documents {
				table.Rows = append(table.Rows, []string{d.Name, d.Category, d.UploadedAt, d.URL})
			}
			return formatter.Format(table)
		},
	}
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the HR dashboard summary",
		Long: `Show the dashboard aggregates: headcount, attendance, and pending
leave applications.

Examples:
  workzen dashboard
  workzen dashboard -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.EnsureSession(cmd.Context())
			if err := app.Guard.Check(); err != nil {
				return err
			}

			stats, err := app.Directory.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}

			formatter, err := app.Formatter()
			if err != nil {
				return err
			}
			if app.output != "text" {
				return formatter.Format(stats)
			}
			table := ux.Table{
				Headers: []string{"Metric", "Value"},
				Rows: [][]string{
					{"Total employees", strconv.Itoa(stats.TotalEmployees)},
					{"Present today", strconv.Itoa(stats.PresentToday)},
					{"On leave today", strconv.Itoa(stats.OnLeaveToday)},
					{"Pending leaves", strconv.Itoa(stats.PendingLeaves)},
				},
			}
			return formatter.Format(table)
		},
	}
}
