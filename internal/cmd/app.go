package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/workzen/workzen-cli/internal/api"
	"github.com/workzen/workzen-cli/internal/config"
	"github.com/workzen/workzen-cli/internal/credstore"
	"github.com/workzen/workzen-cli/internal/guard"
	"github.com/workzen/workzen-cli/internal/log"
	"github.com/workzen/workzen-cli/internal/session"
	"github.com/workzen/workzen-cli/internal/ux"
)

// App holds the wired-up dependencies every command runs against. Commands
// receive it explicitly; there is no package-level singleton, so tests can
// build one around an httptest backend.
type App struct {
	Config     *config.Config
	Logger     *log.Logger
	Store      credstore.Store
	Client     *api.Client
	Directory  *api.Directory
	Controller *session.Controller
	Guard      *guard.Guard
	Notifier   ux.Notifier

	stdout io.Writer
	stderr io.Writer

	// persistent flag targets
	output   string
	logLevel string
	noColor  bool
	apiURL   string
}

// NewApp creates an App over the given configuration. Dependencies left nil
// are built in initialize once flags are parsed.
func NewApp(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		stdout: os.Stdout,
		stderr: os.Stderr,
		output: cfg.Output,
	}
}

// initialize finishes wiring after flag parsing. It runs as the root
// command's PersistentPreRun, so every subcommand sees the same stack.
func (a *App) initialize() error {
	if a.apiURL != "" {
		a.Config.APIURL = strings.TrimRight(a.apiURL, "/")
	}
	if a.logLevel != "" {
		a.Config.LogLevel = a.logLevel
	}
	if a.output == "" {
		a.output = a.Config.Output
	}

	if a.Logger == nil {
		logCfg := log.DefaultConfig()
		logCfg.Level = log.ParseLevel(a.Config.LogLevel)
		logCfg.Format = log.ParseFormat(a.Config.LogFormat)
		a.Logger = log.New(logCfg)
	}
	log.SetDefaultLogger(a.Logger)

	if a.Store == nil {
		a.Store = credstore.NewFileStore(a.Config.StateDir)
	}
	if a.Notifier == nil {
		a.Notifier = ux.NewConsoleNotifier(a.stderr, a.noColor)
	}
	if a.Client == nil {
		a.Client = api.NewClient(a.Config.APIURL, a.Store, a.Logger)
	}
	a.Directory = api.NewDirectory(a.Client)
	if a.Controller == nil {
		a.Controller = session.NewController(a.Client, a.Store, a.Notifier,
			&hintNavigator{notifier: a.Notifier}, a.Logger)
	}
	// Guard errors already carry the recovery suggestion; a navigator here
	// would print the same hint twice.
	a.Guard = guard.New(a.Controller, nil)
	return nil
}

// EnsureSession restores a persisted session once per process. Restore
// failures are not fatal here; the guard turns a missing session into the
// right error for the command at hand.
func (a *App) EnsureSession(ctx context.Context) {
	if a.Controller.Snapshot().State != session.StateUninitialized {
		return
	}
	if err := a.Controller.Restore(ctx); err != nil {
		a.Logger.WithError(err).Debug("session restore failed")
	}
}

// Formatter builds the output formatter selected by the --output flag.
func (a *App) Formatter() (ux.Formatter, error) {
	return ux.NewFormatter(a.output, &ux.FormatterOptions{
		Writer:  a.stdout,
		NoColor: a.noColor,
	})
}

// hintNavigator is the terminal analogue of the old frontend's redirects:
// instead of moving the user somewhere, it tells them which command to run.
type hintNavigator struct {
	notifier ux.Notifier
}

func (n *hintNavigator) NavigateToLogin() {
	n.notifier.Info("Run 'workzen login' to start a session")
}

func (n *hintNavigator) NavigateToDashboard() {
	n.notifier.Info("Run 'workzen dashboard' to see what your role can access")
}
