package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the gridctl config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/gridctl; on macOS
// to ~/Library/Application Support/gridctl; and on Windows to
// %AppData%/gridctl. GRIDCTL_HOME overrides the whole path. Falls back to
// HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	if override := strings.TrimSpace(os.Getenv("GRIDCTL_HOME")); override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "gridctl"), nil
}

// TablesDir returns the directory where table documents live.
func TablesDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tables"), nil
}

// SettingsPath returns the settings.json file path.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// RecentsPath returns the recently-opened documents list path.
func RecentsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "recent.json"), nil
}
