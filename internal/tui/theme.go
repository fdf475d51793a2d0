package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin palettes: Mocha for dark mode, Latte for light mode
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

type palette struct {
	text     lipgloss.Color
	subtext  lipgloss.Color
	overlay  lipgloss.Color
	surface  lipgloss.Color
	base     lipgloss.Color
	mantle   lipgloss.Color
	accent   lipgloss.Color
	focus    lipgloss.Color
	success  lipgloss.Color
	errColor lipgloss.Color
	warning  lipgloss.Color
}

var mochaPalette = palette{
	text:     "#cdd6f4",
	subtext:  "#a6adc8",
	overlay:  "#7f849c",
	surface:  "#45475a",
	base:     "#1e1e2e",
	mantle:   "#181825",
	accent:   "#f5c2e7",
	focus:    "#b4befe",
	success:  "#a6e3a1",
	errColor: "#f38ba8",
	warning:  "#f9e2af",
}

var lattePalette = palette{
	text:     "#4c4f69",
	subtext:  "#6c6f85",
	overlay:  "#8c8fa1",
	surface:  "#bcc0cc",
	base:     "#eff1f5",
	mantle:   "#e6e9ef",
	accent:   "#ea76cb",
	focus:    "#7287fd",
	success:  "#40a02b",
	errColor: "#d20f39",
	warning:  "#df8e1d",
}

// theme holds every style the views render with.
type theme struct {
	app         lipgloss.Style
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	section     lipgloss.Style
	title       lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	result      lipgloss.Style
	muted       lipgloss.Style
	success     lipgloss.Style
	err         lipgloss.Style
	warning     lipgloss.Style
	cursor      lipgloss.Style
	userBubble  lipgloss.Style
	botBubble   lipgloss.Style
	footer      lipgloss.Style
	footerKey   lipgloss.Style
}

func newTheme(p palette) theme {
	return theme{
		app:         lipgloss.NewStyle().Bold(true).Foreground(p.accent).Padding(0, 1),
		activeTab:   lipgloss.NewStyle().Bold(true).Foreground(p.base).Background(p.accent).Padding(0, 1),
		inactiveTab: lipgloss.NewStyle().Foreground(p.subtext).Padding(0, 1),
		section:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.surface).Padding(0, 1),
		title:       lipgloss.NewStyle().Bold(true).Foreground(p.focus),
		label:       lipgloss.NewStyle().Foreground(p.subtext),
		value:       lipgloss.NewStyle().Foreground(p.text),
		result:      lipgloss.NewStyle().Bold(true).Foreground(p.success),
		muted:       lipgloss.NewStyle().Foreground(p.overlay),
		success:     lipgloss.NewStyle().Foreground(p.success),
		err:         lipgloss.NewStyle().Foreground(p.errColor),
		warning:     lipgloss.NewStyle().Foreground(p.warning),
		cursor:      lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		userBubble:  lipgloss.NewStyle().Foreground(p.base).Background(p.focus).Padding(0, 1),
		botBubble:   lipgloss.NewStyle().Foreground(p.text).Background(p.surface).Padding(0, 1),
		footer:      lipgloss.NewStyle().Foreground(p.subtext).Background(p.mantle).Padding(0, 1),
		footerKey:   lipgloss.NewStyle().Bold(true).Foreground(p.accent).Background(p.mantle),
	}
}

var (
	darkTheme  = newTheme(mochaPalette)
	lightTheme = newTheme(lattePalette)
)

// themeFor picks the styles for the dark mode setting.
func themeFor(darkMode bool) theme {
	if darkMode {
		return darkTheme
	}
	return lightTheme
}
