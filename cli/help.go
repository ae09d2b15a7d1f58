package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/MrWheatley/hud-manager/tui/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const maxWidth = 60
const minWidth = 40

// getTerminalWidth returns the terminal width capped at maxWidth.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth {
		return maxWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}

// wrapText wraps text to the specified width, preserving existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxWidth
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			result = append(result, paragraph)
			continue
		}

		var line string
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= width {
				line += " " + word
			} else {
				result = append(result, line)
				line = word
			}
		}
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// SetStyledHelp applies consistent styling to a command's help output.
// Call this on the root command before Execute().
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

// PrintError prints a styled error message to stderr with help hint.
func PrintError(cmd *cobra.Command, err error) {
	t := theme.DefaultTheme
	red := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Red)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", red.Render("Error:"), err.Error())
	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", t.Muted.Render(fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath())))
}

func styledHelpFunc(cmd *cobra.Command, args []string) {
	t := theme.DefaultTheme
	blue := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Blue)
	section := lipgloss.NewStyle().Italic(true).Foreground(t.Colors.Orange)

	// Get terminal width for wrapping (subtract 2 for indent)
	width := getTerminalWidth() - 2

	// Title - uppercase command path in orange
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Orange)
	fmt.Println(" " + title.Render(strings.ToUpper(cmd.CommandPath())))

	if cmd.Short != "" {
		for _, line := range strings.Split(wrapText(cmd.Short, width), "\n") {
			fmt.Println(" " + t.Italic.Render(line))
		}
	}
	if cmd.Long != "" && cmd.Long != cmd.Short {
		fmt.Println()
		for _, line := range strings.Split(wrapText(cmd.Long, width), "\n") {
			fmt.Println(" " + line)
		}
	}

	// Usage section
	if cmd.Runnable() || cmd.HasSubCommands() {
		fmt.Println("\n " + section.Render("USAGE"))
		if cmd.Runnable() {
			fmt.Printf(" %s\n", cmd.UseLine())
		}
		if cmd.HasSubCommands() {
			fmt.Printf(" %s [command]\n", cmd.CommandPath())
		}
	}

	// Commands section
	if cmd.HasAvailableSubCommands() {
		maxLen := 0
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() && len(sub.Name()) > maxLen {
				maxLen = len(sub.Name())
			}
		}

		fmt.Println("\n " + section.Render("COMMANDS"))
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() {
				padding := strings.Repeat(" ", maxLen-len(sub.Name()))
				fmt.Printf(" %s%s  %s\n", blue.Render(sub.Name()), padding, sub.Short)
			}
		}
	}

	// Flags section
	var visibleFlags []*pflag.Flag
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			visibleFlags = append(visibleFlags, f)
		}
	})

	if len(visibleFlags) > 0 {
		magenta := lipgloss.NewStyle().Foreground(t.Colors.Violet)
		fmt.Println("\n " + section.Render("FLAGS"))
		maxFlagLen := 0
		for _, f := range visibleFlags {
			if len(formatFlagName(f)) > maxFlagLen {
				maxFlagLen = len(formatFlagName(f))
			}
		}
		for _, f := range visibleFlags {
			flagStr := formatFlagName(f)
			padding := strings.Repeat(" ", maxFlagLen-len(flagStr))

			usage := f.Usage
			if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "[]" {
				usage += t.Muted.Render(fmt.Sprintf(" (default: %s)", f.DefValue))
			}
			fmt.Printf(" %s%s  %s\n", magenta.Render(flagStr), padding, usage)
		}
	}

	// Examples section
	if cmd.Example != "" {
		fmt.Println("\n " + section.Render("EXAMPLES"))
		for _, line := range strings.Split(cmd.Example, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				fmt.Println()
				continue
			}
			if strings.HasPrefix(trimmed, "#") {
				fmt.Println("  " + t.Muted.Render(trimmed))
			} else {
				fmt.Println("  " + trimmed)
			}
		}
	}

	fmt.Println()
}

// formatFlagName renders a flag's name with its shorthand.
func formatFlagName(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	return fmt.Sprintf("    --%s", f.Name)
}
