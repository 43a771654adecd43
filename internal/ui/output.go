package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// UI provides user interface methods
type UI struct {
	output         io.Writer
	nonInteractive bool // If true, don't prompt user for input
	// Color functions
	colorInfo    *color.Color
	colorSuccess *color.Color
	colorWarning *color.Color
	colorError   *color.Color
	colorHeader  *color.Color
}

// New creates a UI writing to stdout. Prompts are disabled when stdin is not
// a terminal.
func New() *UI {
	return &UI{
		output:         os.Stdout,
		nonInteractive: !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()),
		colorInfo:      color.New(color.FgYellow),
		colorSuccess:   color.New(color.FgGreen),
		colorWarning:   color.New(color.FgYellow),
		colorError:     color.New(color.FgRed),
		colorHeader:    color.New(color.FgYellow, color.Bold),
	}
}

// NewWithWriter creates a non-interactive UI with a custom output writer
// (useful for testing)
func NewWithWriter(w io.Writer) *UI {
	ui := New()
	ui.output = w
	ui.nonInteractive = true
	return ui
}

// SetNonInteractive enables or disables non-interactive mode
func (u *UI) SetNonInteractive(enabled bool) {
	u.nonInteractive = enabled
}

// IsNonInteractive returns true if non-interactive mode is enabled
func (u *UI) IsNonInteractive() bool {
	return u.nonInteractive
}

// Info prints a progress message
func (u *UI) Info(msg string) {
	u.colorInfo.Fprintf(u.output, "%s\n", msg)
}

// Infof prints a formatted progress message
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message
func (u *UI) Success(msg string) {
	u.colorSuccess.Fprintf(u.output, "✓ %s\n", msg)
}

// Successf prints a formatted success message
func (u *UI) Successf(format string, args ...interface{}) {
	u.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func (u *UI) Warning(msg string) {
	u.colorWarning.Fprintf(u.output, "⚠ Warning: %s\n", msg)
}

// Warningf prints a formatted warning message
func (u *UI) Warningf(format string, args ...interface{}) {
	u.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message
func (u *UI) Error(msg string) {
	u.colorError.Fprintf(u.output, "✗ Error: %s\n", msg)
}

// Errorf prints a formatted error message
func (u *UI) Errorf(format string, args ...interface{}) {
	u.Error(fmt.Sprintf(format, args...))
}

// Failure prints a failed verdict without the error prefix
func (u *UI) Failure(msg string) {
	u.colorError.Fprintf(u.output, "✗ %s\n", msg)
}

// Failuref prints a formatted failed verdict
func (u *UI) Failuref(format string, args ...interface{}) {
	u.Failure(fmt.Sprintf(format, args...))
}

// Noticef prints a formatted note in the warning color without the warning
// prefix
func (u *UI) Noticef(format string, args ...interface{}) {
	u.colorWarning.Fprintf(u.output, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// Step prints a blank line and a section heading
func (u *UI) Step(msg string) {
	fmt.Fprintln(u.output)
	u.colorInfo.Fprintln(u.output, msg)
}

// Header prints a title between two rules
func (u *UI) Header(title string) {
	border := strings.Repeat("=", 42)

	u.colorHeader.Fprintln(u.output, border)
	u.colorHeader.Fprintln(u.output, title)
	u.colorHeader.Fprintln(u.output, border)
	fmt.Fprintln(u.output)
}

// Separator prints a separator line
func (u *UI) Separator() {
	u.colorHeader.Fprintln(u.output, strings.Repeat("=", 42))
}

// Print prints a plain message without formatting
func (u *UI) Print(msg string) {
	fmt.Fprintln(u.output, msg)
}
