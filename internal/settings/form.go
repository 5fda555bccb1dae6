// Package settings is the interactive editor for settings.json.
package settings

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"gridctl/internal/config"
)

// Run launches the settings form, preloaded with the current values, and
// saves on submit.
func Run() error {
	cur, err := config.LoadSettings()
	if err != nil {
		return err
	}

	rowHeight := strconv.Itoa(cur.RowHeight)
	rtl := cur.RightToLeft
	searchOn := cur.SearchEnabled
	readOnly := cur.ReadOnly

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Grid editor defaults, saved to settings.json"),
			huh.NewInput().
				Title("Row height").
				Description("Display lines per row").
				Value(&rowHeight).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 || n > 5 {
						return fmt.Errorf("enter a number between 1 and 5")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Right to left").
				Description("Swap left/right navigation").
				Value(&rtl),
			huh.NewConfirm().
				Title("Search").
				Description("Enable the ctrl+f search bar").
				Value(&searchOn),
			huh.NewConfirm().
				Title("Read only").
				Description("Disable editing and mutations").
				Value(&readOnly),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err
	}

	cur.RowHeight, _ = strconv.Atoi(rowHeight)
	cur.RightToLeft = rtl
	cur.SearchEnabled = searchOn
	cur.ReadOnly = readOnly
	if err := config.SaveSettings(cur); err != nil {
		return err
	}
	fmt.Println("\n✓ settings.json saved")
	return nil
}
