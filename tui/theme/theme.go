// Package theme holds the color palettes and lipgloss styles shared by the
// hud-manager TUI and CLI output.
package theme

import (
	"os"
	"strings"

	"github.com/MrWheatley/hud-manager/config"
	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "kanagawa"

// --- Kanagawa palette ---
const (
	kanagawaDarkGreen              = "#98BB6C"
	kanagawaDarkYellow             = "#FF9E3B"
	kanagawaDarkRed                = "#FF5D62"
	kanagawaDarkOrange             = "#FFA066"
	kanagawaDarkBlue               = "#7FB4CA"
	kanagawaDarkViolet             = "#957FB8"
	kanagawaDarkLightText          = "#DCD7BA"
	kanagawaDarkMutedText          = "#727169"
	kanagawaDarkBorder             = "#363646"
	kanagawaDarkSelectedBackground = "#223249"

	kanagawaLightGreen              = "#4E7C5A"
	kanagawaLightYellow             = "#A68A64"
	kanagawaLightRed                = "#C34043"
	kanagawaLightOrange             = "#CC6B4E"
	kanagawaLightBlue               = "#4F7CAC"
	kanagawaLightViolet             = "#674D7A"
	kanagawaLightLightText          = "#2B2F42"
	kanagawaLightMutedText          = "#6C7086"
	kanagawaLightBorder             = "#B5BDC5"
	kanagawaLightSelectedBackground = "#E2E6F3"
)

// --- Gruvbox palette ---
const (
	gruvboxDarkGreen              = "#B8BB26"
	gruvboxDarkYellow             = "#FABD2F"
	gruvboxDarkRed                = "#FB4934"
	gruvboxDarkOrange             = "#FE8019"
	gruvboxDarkBlue               = "#458588"
	gruvboxDarkViolet             = "#B16286"
	gruvboxDarkLightText          = "#EBDBB2"
	gruvboxDarkMutedText          = "#BDAE93"
	gruvboxDarkBorder             = "#504945"
	gruvboxDarkSelectedBackground = "#32302F"

	gruvboxLightGreen              = "#98971A"
	gruvboxLightYellow             = "#D79921"
	gruvboxLightRed                = "#CC241D"
	gruvboxLightOrange             = "#D65D0E"
	gruvboxLightBlue               = "#076678"
	gruvboxLightViolet             = "#8F3F71"
	gruvboxLightLightText          = "#3C3836"
	gruvboxLightMutedText          = "#928374"
	gruvboxLightBorder             = "#D5C4A1"
	gruvboxLightSelectedBackground = "#F2E5BC"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen              = "2"
	terminalYellow             = "3"
	terminalRed                = "1"
	terminalOrange             = "208"
	terminalBlue               = "4"
	terminalViolet             = "5"
	terminalLightText          = "7"
	terminalMutedText          = "8"
	terminalBorder             = "8"
	terminalSelectedBackground = "8"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
}

// DefaultColors exposes the active color palette selected for the current terminal.
var DefaultColors Colors

// Theme holds all the pre-configured styles for hud-manager.
type Theme struct {
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles - visual hierarchy
	Bold     lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Italic   lipgloss.Style
	Selected lipgloss.Style

	// Container styles
	Box lipgloss.Style

	// Interactive elements
	Input       lipgloss.Style
	Placeholder lipgloss.Style

	// Special styles
	Highlight lipgloss.Style
	Accent    lipgloss.Style

	// HUD list styles
	ActiveHud   lipgloss.Style
	FavoriteHud lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"gruvbox":  newGruvboxColors,
	"terminal": newTerminalColors,
}

// DefaultTheme is the default theme instance for hud-manager.
var DefaultTheme = initDefaultTheme()

// NewTheme creates a theme based on the configured theme selection.
func NewTheme() *Theme {
	return newThemeFromColors(resolveThemeColors(getThemeName()))
}

// NewThemeWithName constructs a theme from a specific palette name.
func NewThemeWithName(name string) *Theme {
	return newThemeFromColors(resolveThemeColors(name))
}

func initDefaultTheme() *Theme {
	colors := resolveThemeColors(getThemeName())
	DefaultColors = colors
	return newThemeFromColors(colors)
}

func newThemeFromColors(colors Colors) *Theme {
	return &Theme{
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Orange),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Blue).
			Bold(true),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Normal: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Faint(true),

		Italic: lipgloss.NewStyle().
			Italic(true),

		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		Input: lipgloss.NewStyle().
			Foreground(colors.LightText),

		Placeholder: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Italic(true),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),

		ActiveHud: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		FavoriteHud: lipgloss.NewStyle().
			Foreground(colors.Yellow),
	}
}

func resolveThemeColors(name string) Colors {
	if builder, ok := themeRegistry[normalizeThemeName(name)]; ok {
		return builder()
	}
	return themeRegistry[defaultThemeName]()
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func getThemeName() string {
	if theme := normalizeThemeName(os.Getenv("HUD_MANAGER_THEME")); theme != "" {
		return theme
	}

	cfg, err := config.LoadDefault()
	if err != nil || cfg == nil {
		return defaultThemeName
	}
	if theme := normalizeThemeName(cfg.Theme); theme != "" {
		return theme
	}

	return defaultThemeName
}

func newKanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: kanagawaLightGreen, Dark: kanagawaDarkGreen},
		Yellow:             lipgloss.AdaptiveColor{Light: kanagawaLightYellow, Dark: kanagawaDarkYellow},
		Red:                lipgloss.AdaptiveColor{Light: kanagawaLightRed, Dark: kanagawaDarkRed},
		Orange:             lipgloss.AdaptiveColor{Light: kanagawaLightOrange, Dark: kanagawaDarkOrange},
		Blue:               lipgloss.AdaptiveColor{Light: kanagawaLightBlue, Dark: kanagawaDarkBlue},
		Violet:             lipgloss.AdaptiveColor{Light: kanagawaLightViolet, Dark: kanagawaDarkViolet},
		LightText:          lipgloss.AdaptiveColor{Light: kanagawaLightLightText, Dark: kanagawaDarkLightText},
		MutedText:          lipgloss.AdaptiveColor{Light: kanagawaLightMutedText, Dark: kanagawaDarkMutedText},
		Border:             lipgloss.AdaptiveColor{Light: kanagawaLightBorder, Dark: kanagawaDarkBorder},
		SelectedBackground: lipgloss.AdaptiveColor{Light: kanagawaLightSelectedBackground, Dark: kanagawaDarkSelectedBackground},
	}
}

func newGruvboxColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: gruvboxLightGreen, Dark: gruvboxDarkGreen},
		Yellow:             lipgloss.AdaptiveColor{Light: gruvboxLightYellow, Dark: gruvboxDarkYellow},
		Red:                lipgloss.AdaptiveColor{Light: gruvboxLightRed, Dark: gruvboxDarkRed},
		Orange:             lipgloss.AdaptiveColor{Light: gruvboxLightOrange, Dark: gruvboxDarkOrange},
		Blue:               lipgloss.AdaptiveColor{Light: gruvboxLightBlue, Dark: gruvboxDarkBlue},
		Violet:             lipgloss.AdaptiveColor{Light: gruvboxLightViolet, Dark: gruvboxDarkViolet},
		LightText:          lipgloss.AdaptiveColor{Light: gruvboxLightLightText, Dark: gruvboxDarkLightText},
		MutedText:          lipgloss.AdaptiveColor{Light: gruvboxLightMutedText, Dark: gruvboxDarkMutedText},
		Border:             lipgloss.AdaptiveColor{Light: gruvboxLightBorder, Dark: gruvboxDarkBorder},
		SelectedBackground: lipgloss.AdaptiveColor{Light: gruvboxLightSelectedBackground, Dark: gruvboxDarkSelectedBackground},
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color(terminalGreen),
		Yellow:             lipgloss.Color(terminalYellow),
		Red:                lipgloss.Color(terminalRed),
		Orange:             lipgloss.Color(terminalOrange),
		Blue:               lipgloss.Color(terminalBlue),
		Violet:             lipgloss.Color(terminalViolet),
		LightText:          lipgloss.Color(terminalLightText),
		MutedText:          lipgloss.Color(terminalMutedText),
		Border:             lipgloss.Color(terminalBorder),
		SelectedBackground: lipgloss.Color(terminalSelectedBackground),
	}
}
