// Package categories manages the user's ordered category list, persisted as
// a small JSON preferences file in the home directory. Line item categories
// are opaque free text everywhere else in the pipeline; this list is
// presentation vocabulary only and is never used for referential checks.
package categories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tbg-enterprises/quote-builder/pkg/constants"
)

var defaults = []string{
	"Demo",
	"Framing",
	"Electrical",
	"Plumbing",
	"HVAC",
	"Drywall",
	"Painting",
	"Flooring",
	"Tile",
	"Showers",
	"Cabinets",
	"Countertops",
	"Fixtures",
	"Trim/Finish",
	"Cleanup",
	"Materials",
	"Other",
}

type prefs struct {
	Categories []string `json:"categories"`
}

// Default returns a copy of the built-in category list.
func Default() []string {
	return append([]string(nil), defaults...)
}

// DefaultPath returns the preferences file location in the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate home directory: %w", err)
	}
	return filepath.Join(home, constants.CategoriesFileName), nil
}

// Load reads the ordered category list from path. A missing, unreadable or
// corrupt preferences file falls back to the defaults.
func Load(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	var p prefs
	if err := json.Unmarshal(data, &p); err != nil || len(p.Categories) == 0 {
		return Default()
	}
	return p.Categories
}

// Save writes the ordered category list to path as indented JSON.
func Save(path string, list []string) error {
	data, err := json.MarshalIndent(prefs{Categories: list}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not save categories: %w", err)
	}
	return nil
}
