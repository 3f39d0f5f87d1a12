package tui

import (
	"strings"

	"github.com/andy/dualtimer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// tokenHex maps palette tokens (color-shade) to terminal colors
var tokenHex = map[string]string{
	"indigo-100": "#e0e7ff", "indigo-300": "#a5b4fc", "indigo-400": "#818cf8",
	"indigo-500": "#6366f1", "indigo-600": "#4f46e5", "indigo-900": "#312e81",

	"emerald-100": "#d1fae5", "emerald-300": "#6ee7b7", "emerald-400": "#34d399",
	"emerald-500": "#10b981", "emerald-600": "#059669", "emerald-900": "#064e3b",

	"rose-100": "#ffe4e6", "rose-300": "#fda4af", "rose-400": "#fb7185",
	"rose-500": "#f43f5e", "rose-600": "#e11d48", "rose-900": "#881337",

	"amber-100": "#fef3c7", "amber-300": "#fcd34d", "amber-400": "#fbbf24",
	"amber-500": "#f59e0b", "amber-600": "#d97706", "amber-900": "#78350f",

	"purple-100": "#f3e8ff", "purple-300": "#d8b4fe", "purple-400": "#c084fc",
	"purple-500": "#a855f7", "purple-600": "#9333ea", "purple-900": "#581c87",

	"cyan-100": "#cffafe", "cyan-300": "#67e8f9", "cyan-400": "#22d3ee",
	"cyan-500": "#06b6d4", "cyan-600": "#0891b2", "cyan-900": "#164e63",
}

// tokenColor resolves a palette token; the alpha suffix ("/30") is dropped
func tokenColor(token string) lipgloss.Color {
	base, _, _ := strings.Cut(token, "/")
	if hex, ok := tokenHex[base]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(tokenHex["indigo-500"])
}

var (
	// Colors
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	textColor    = lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#d1d5db"}
	tabIdleColor = lipgloss.AdaptiveColor{Light: "#f3f4f6", Dark: "#374151"}
	emptyBar     = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#4b5563"}
	successColor = lipgloss.Color("#22c55e")
	warningColor = lipgloss.Color("#eab308")
	stoppedColor = lipgloss.Color("#9ca3af")
	errorColor   = lipgloss.Color("#ef4444")

	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	textStyle     = lipgloss.NewStyle().Foreground(textColor)
)

// themeStyles are the styles that follow the accent color
type themeStyles struct {
	frame     lipgloss.Style
	clock     lipgloss.Style
	tabActive lipgloss.Style
	tabIdle   lipgloss.Style
	button    lipgloss.Style
	swatch    lipgloss.Style
	barFull   string
}

func newThemeStyles(p domain.ActivePalette) themeStyles {
	primary := tokenColor(p.Tokens.Primary)
	text := tokenColor(p.Tokens.PrimaryText)
	secondary := tokenColor(p.Tokens.Secondary)
	hover := tokenColor(p.Tokens.PrimaryHover)

	frameBorder := secondary
	if p.Mode == domain.ThemeModeDark {
		frameBorder = hover
	}

	return themeStyles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(frameBorder).
			Padding(1, 3),
		clock:     lipgloss.NewStyle().Bold(true).Foreground(text),
		tabActive: lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("#ffffff")).Background(primary),
		tabIdle:   lipgloss.NewStyle().Padding(0, 2).Foreground(textColor).Background(tabIdleColor),
		button:    lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("#ffffff")).Background(primary),
		swatch:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		barFull:   string(primary),
	}
}

// stateColor is the status indicator color for a run state
func stateColor(s domain.TimerState) lipgloss.Color {
	switch s {
	case domain.TimerStateRunning:
		return successColor
	case domain.TimerStatePaused:
		return warningColor
	default:
		return stoppedColor
	}
}
