// Package app boots the grid editor TUI.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gridctl/internal/config"
	"gridctl/internal/store"
	"gridctl/internal/table"
	"gridctl/internal/ui"
)

// Start opens the document at path in the editor. An empty path opens the
// last document, falling back to the seeded demo table.
func Start(path string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if path == "" {
		path = settings.LastDocument
	}
	if path == "" {
		path, err = table.DefaultPath(table.Seed().Name)
		if err != nil {
			return err
		}
	}
	doc, err := table.Load(path)
	if err != nil {
		return err
	}
	if len(doc.Columns) == 0 {
		doc = table.Seed()
		if err := table.Save(path, doc); err != nil {
			return err
		}
	}

	if rp, err := config.RecentsPath(); err == nil {
		_ = store.Touch(rp, path)
	}
	settings.LastDocument = path
	_ = config.SaveSettings(settings)

	// bubblezone backs mouse hit-testing for cells and menus
	zone.NewGlobal()
	_, err = tea.NewProgram(
		ui.InitialModel(path, doc, settings),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	return err
}
