package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds user-tunable grid behavior persisted to settings.json.
type Settings struct {
	// RowHeight is the default row height in display lines.
	RowHeight int `json:"rowHeight"`
	// RightToLeft swaps the meaning of left/right navigation.
	RightToLeft bool `json:"rightToLeft"`
	// SearchEnabled toggles the ctrl+f search bar.
	SearchEnabled bool `json:"searchEnabled"`
	// ReadOnly disables cell editing and mutations.
	ReadOnly bool `json:"readOnly"`
	// LastDocument is the path of the most recently opened document.
	LastDocument string `json:"lastDocument,omitempty"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		RowHeight:     1,
		SearchEnabled: true,
	}
}

// LoadSettings reads settings.json. Missing file yields defaults without error.
func LoadSettings() (Settings, error) {
	p, err := SettingsPath()
	if err != nil {
		return DefaultSettings(), err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), err
	}
	s := DefaultSettings()
	if err := json.Unmarshal(b, &s); err != nil {
		return DefaultSettings(), err
	}
	return normalizeSettings(s), nil
}

// SaveSettings writes settings.json, creating parent dirs.
func SaveSettings(s Settings) error {
	p, err := SettingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(normalizeSettings(s), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

func normalizeSettings(s Settings) Settings {
	if s.RowHeight < 1 {
		s.RowHeight = 1
	}
	return s
}
