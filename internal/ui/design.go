package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the TUI color palette and common styles.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	// Core brand/semantic colors
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Yellow  lipgloss.Color // #e6cc77
	Magenta lipgloss.Color // #d9739f
	Cyan    lipgloss.Color // #5eaab5
	Red     lipgloss.Color // #cb7676

	// Text colors
	Text      lipgloss.Color // #dbd7caee
	Secondary lipgloss.Color // #bfbaaa
	Muted     lipgloss.Color // #dedcd590

	// Surfaces
	Bg     lipgloss.Color // #181818
	BgSoft lipgloss.Color // #292929
	Border lipgloss.Color // #252525

	// Text on accent backgrounds (selection bar, chips)
	OnAccent lipgloss.Color // #222

	// Status bar colors
	BarFG lipgloss.AdaptiveColor // light/dark
	BarBG lipgloss.AdaptiveColor // light/dark
}

// Vitesse defines the current global design theme for the TUI.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Magenta: lipgloss.Color("#d9739f"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),

	Bg:     lipgloss.Color("#181818"),
	BgSoft: lipgloss.Color("#292929"),
	Border: lipgloss.Color("#252525"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.AdaptiveColor{Light: "#343433", Dark: "#bfbaaa"},
	BarBG: lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#222"},
}

// Convenience style helpers

// AccentBold returns a bold style using the primary accent color.
func AccentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary)
}

// SelectedRow highlights the focused file row.
func SelectedRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Background(Vitesse.Yellow)
}

// DirName styles directory entries, TextName editable text files.
func DirName() lipgloss.Style  { return lipgloss.NewStyle().Foreground(Vitesse.Blue) }
func TextName() lipgloss.Style { return lipgloss.NewStyle().Foreground(Vitesse.Primary) }

// MutedText styles secondary metadata columns.
func MutedText() lipgloss.Style { return lipgloss.NewStyle().Foreground(Vitesse.Muted) }

// PanelBorder returns the bordered box style used for panels and popups.
func PanelBorder(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(0, 1)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}
