package categories

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsACopy(t *testing.T) {
	first := Default()
	first[0] = "Mutated"
	if Default()[0] != "Demo" {
		t.Error("Default() returned a shared slice")
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	list := Load(filepath.Join(t.TempDir(), "absent.json"))
	if len(list) != 17 || list[0] != "Demo" || list[16] != "Other" {
		t.Errorf("Load() on missing file = %v, expected defaults", list)
	}
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if list := Load(path); list[0] != "Demo" {
		t.Errorf("Load() on corrupt file = %v, expected defaults", list)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	custom := []string{"Decks", "Fencing", "Demo"}

	if err := Save(path, custom); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded := Load(path)
	if len(loaded) != len(custom) {
		t.Fatalf("Load() returned %d categories, expected %d", len(loaded), len(custom))
	}
	for i := range custom {
		if loaded[i] != custom[i] {
			t.Errorf("category %d = %q, expected %q (order must be preserved)", i, loaded[i], custom[i])
		}
	}
}
