package settings

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"lspretty/internal/prefs"
)

// Run launches an interactive settings form to configure prefs.json.
// It loads the current preferences, edits them in place, and saves on
// submit. Cancel leaves the file untouched.
func Run() error {
	p, _ := prefs.Load()

	// Light theme tweaks inspired by freeze/interactive.go
	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(24).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(24).Foreground(green).Bold(true)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Browser defaults, saved to prefs.json"),
			huh.NewConfirm().
				Title("Show hidden files").
				Value(&p.ShowHidden),
			huh.NewConfirm().
				Title("Human-readable sizes").
				Value(&p.HumanSizes),
			huh.NewConfirm().
				Title("Nerd Font icons").
				Value(&p.NerdFont),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	if err := prefs.Save(p); err != nil {
		return err
	}
	fmt.Printf("\n✓ saved prefs.json\n\n")
	return nil
}
