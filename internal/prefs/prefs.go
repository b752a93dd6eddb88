// Package prefs persists browser preferences as a small JSON document in
// the user config directory. Missing file means defaults; CLI flags
// override loaded values.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"lspretty/internal/config"
)

// Prefs are the persisted browser preferences.
type Prefs struct {
	ShowHidden bool `json:"show_hidden"`
	HumanSizes bool `json:"human_sizes"`
	NerdFont   bool `json:"nerd_font"`
}

// Default returns the out-of-the-box preferences.
func Default() Prefs {
	return Prefs{HumanSizes: true, NerdFont: true}
}

// Path returns the preferences file location.
func Path() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs.json"), nil
}

// Load reads preferences from disk. A missing file yields defaults.
func Load() (Prefs, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	out := Default()
	if err := json.Unmarshal(b, &out); err != nil {
		return Default(), err
	}
	return out, nil
}

// Save writes preferences to disk, creating the directory if needed.
func Save(p Prefs) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
