// Package ux owns user-facing output: transient notifications (the
// terminal stand-in for toasts) and structured output formatting for list
// commands.
package ux

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Notifier surfaces transient feedback to the user. Operations notify
// through this interface and then return the error to their caller, so
// commands stay in charge of their own control flow.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// ConsoleNotifier writes styled notifications to a terminal.
type ConsoleNotifier struct {
	out     io.Writer
	noColor bool
}

// NewConsoleNotifier creates a notifier writing to out. A nil out defaults
// to stderr so notifications never mix with piped command output.
func NewConsoleNotifier(out io.Writer, noColor bool) *ConsoleNotifier {
	if out == nil {
		out = os.Stderr
	}
	return &ConsoleNotifier{out: out, noColor: noColor}
}

// Success reports a completed operation.
func (n *ConsoleNotifier) Success(msg string) {
	n.print(successStyle, "✓ "+msg)
}

// Error reports a failed operation.
func (n *ConsoleNotifier) Error(msg string) {
	n.print(errorStyle, "✗ "+msg)
}

// Info reports a neutral status change.
func (n *ConsoleNotifier) Info(msg string) {
	n.print(infoStyle, "• "+msg)
}

func (n *ConsoleNotifier) print(style lipgloss.Style, msg string) {
	if n.noColor {
		fmt.Fprintln(n.out, msg)
		return
	}
	fmt.Fprintln(n.out, style.Render(msg))
}

// Recorder captures notifications for tests.
type Recorder struct {
	Successes []string
	Errors    []string
	Infos     []string
}

// Success records a success notification.
func (r *Recorder) Success(msg string) { r.Successes = append(r.Successes, msg) }

// Error records an error notification.
func (r *Recorder) Error(msg string) { r.Errors = append(r.Errors, msg) }

// Info records an info notification.
func (r *Recorder) Info(msg string) { r.Infos = append(r.Infos, msg) }

var (
	_ Notifier = (*ConsoleNotifier)(nil)
	_ Notifier = (*Recorder)(nil)
)
