package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// PrettyLogger provides styled console output for one-shot CLI commands.
type PrettyLogger struct {
	writer io.Writer
	styles PrettyStyles
}

// PrettyStyles contains lipgloss styles for different message types
type PrettyStyles struct {
	Success lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Path    lipgloss.Style
}

// DefaultPrettyStyles returns the default styling for pretty output
func DefaultPrettyStyles() PrettyStyles {
	return PrettyStyles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Italic(true),
	}
}

// NewPrettyLogger creates a pretty logger writing to stderr
func NewPrettyLogger() *PrettyLogger {
	return &PrettyLogger{
		writer: os.Stderr,
		styles: DefaultPrettyStyles(),
	}
}

// WithWriter sets a custom writer for pretty output
func (p *PrettyLogger) WithWriter(w io.Writer) *PrettyLogger {
	p.writer = w
	return p
}

// Success logs a success message with a checkmark
func (p *PrettyLogger) Success(message string) {
	fmt.Fprintf(p.writer, "%s %s\n",
		p.styles.Success.Render("✓"),
		p.styles.Success.Render(message))
}

// InfoPretty logs an info message with pretty formatting
func (p *PrettyLogger) InfoPretty(message string) {
	fmt.Fprintf(p.writer, "%s\n", p.styles.Info.Render(message))
}

// WarnPretty logs a warning with pretty formatting
func (p *PrettyLogger) WarnPretty(message string) {
	fmt.Fprintf(p.writer, "%s %s\n",
		p.styles.Warning.Render("⚠"),
		p.styles.Warning.Render(message))
}

// ErrorPretty logs an error with pretty formatting
func (p *PrettyLogger) ErrorPretty(message string, err error) {
	fmt.Fprintf(p.writer, "%s %s",
		p.styles.Error.Render("✗"),
		p.styles.Error.Render(message))
	if err != nil {
		fmt.Fprintf(p.writer, ": %s", p.styles.Error.Render(err.Error()))
	}
	fmt.Fprintln(p.writer)
}

// Field logs a key-value pair with pretty formatting
func (p *PrettyLogger) Field(key string, value interface{}) {
	fmt.Fprintf(p.writer, "%s: %s\n",
		p.styles.Key.Render(key),
		p.styles.Value.Render(fmt.Sprint(value)))
}

// Path logs a file path with special formatting
func (p *PrettyLogger) Path(label string, path string) {
	fmt.Fprintf(p.writer, "%s: %s\n",
		p.styles.Key.Render(label),
		p.styles.Path.Render(path))
}
