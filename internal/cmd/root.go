package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workzen/workzen-cli/internal/config"
)

// NewRootCmd builds the workzen command tree over the given App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "workzen",
		Short: "WorkZen HR management from the terminal",
		Long: `workzen is the terminal client for the WorkZen HR platform.

It covers the daily HR workflows: signing in, checking attendance, applying
for leave, browsing the employee directory, and running payroll views, all
against your company's WorkZen backend.

Credentials are stored in ~/.workzen (override with WORKZEN_STATE_DIR).
The backend is selected with --api-url or WORKZEN_API_URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initialize()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&app.output, "output", "o", app.Config.Output, "output format (text|json|yaml)")
	flags.StringVar(&app.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	flags.BoolVar(&app.noColor, "no-color", false, "disable styled output")
	flags.StringVar(&app.apiURL, "api-url", "", fmt.Sprintf("backend base URL (default %s)", config.DefaultAPIURL))

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newSignupCmd(app),
		newWhoamiCmd(app),
		newPasswdCmd(app),
		newVerifyEmailCmd(app),
		newResendVerificationCmd(app),
		newDashboardCmd(app),
		newUsersCmd(app),
		newDepartmentsCmd(app),
		newAttendanceCmd(app),
		newLeavesCmd(app),
		newPayrollCmd(app),
		newDocumentsCmd(app),
		newCompaniesCmd(app),
		newVersionCmd(app),
	)

	return root
}

// ExecuteContext runs the CLI. Errors are rendered here, with suggestions,
// so main only has to pick the exit code.
func ExecuteContext(ctx context.Context) error {
	app := NewApp(config.Load())
	root := NewRootCmd(app)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(app.stderr, FormatError(err))
	}
	return err
}
