package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Out receives user-facing output. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	redStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#0891B2"))
	blueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// FormatError returns a styled multi-line error message.
func FormatError(title, detail, suggestion string) string {
	out := errorStyle.Render("Error: "+title) + "\n"
	if detail != "" {
		out += "  " + detail + "\n"
	}
	if suggestion != "" {
		out += "  " + hintStyle.Render("Hint: "+suggestion) + "\n"
	}
	return out
}

// Heading prints a bold line preceded by a blank line.
func Heading(title string) {
	fmt.Fprintf(Out, "\n%s\n", boldStyle.Render(title))
}

// Files prints the compose files a command is about to use.
func Files(files string) {
	fmt.Fprintln(Out, dimStyle.Render("["+files+"]"))
}

// Success prints a green success message.
func Success(msg string) {
	fmt.Fprintln(Out, successStyle.Render(msg))
}

// Failure prints a red message without the "Error:" prefix.
func Failure(msg string) {
	fmt.Fprintln(Out, redStyle.Render(msg))
}

// Warn prints a yellow warning message.
func Warn(msg string) {
	fmt.Fprintln(Out, warnStyle.Render("Warning: "+msg))
}

// Notice prints a yellow message without a prefix.
func Notice(msg string) {
	fmt.Fprintln(Out, warnStyle.Render(msg))
}

// Bold renders text in bold.
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Hint renders text in dim italic.
func Hint(s string) string {
	return hintStyle.Render(s)
}

func Red(s string) string    { return redStyle.Render(s) }
func Green(s string) string  { return successStyle.Render(s) }
func Yellow(s string) string { return warnStyle.Render(s) }
func Cyan(s string) string   { return cyanStyle.Render(s) }
func Blue(s string) string   { return blueStyle.Render(s) }
func Gray(s string) string   { return dimStyle.Render(s) }

// Dash is the gray placeholder used for empty table cells.
func Dash() string {
	return dimStyle.Render("-")
}

// ValidationOK prints a green check for a valid field.
func ValidationOK(field, detail string) {
	fmt.Fprintf(Out, "  %s %s: %s\n", successStyle.Render("OK "), field, detail)
}

// ValidationErr prints a red error for an invalid field.
func ValidationErr(field, message, suggestion string) {
	fmt.Fprintf(Out, "  %s %s: %s\n", errorStyle.Render("ERR"), field, message)
	if suggestion != "" {
		fmt.Fprintf(Out, "      %s\n", hintStyle.Render("Hint: "+suggestion))
	}
}
