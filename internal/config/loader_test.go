package config

import (
	"path/filepath"
	"testing"

	"github.com/iuga/starlog/internal/models"
)

func TestSaveLoadYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	in := models.NewSettings()
	in.Defaults.Folder = "/tmp/lab"
	in.Defaults.Version = "3.1"

	if err := SaveYAML(path, in); err != nil {
		t.Fatalf("SaveYAML: %v", err)
	}

	var out models.Settings
	if err := LoadYAML(path, &out); err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if out.Defaults.Folder != "/tmp/lab" || out.Defaults.Version != "3.1" {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	var out models.Settings
	if err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"), &out); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadYAMLOrDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	got, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		t.Fatalf("LoadYAMLOrDefault: %v", err)
	}
	if got.Defaults.Folder != "./starlog" || got.Defaults.Version != "1.0" {
		t.Errorf("defaults = %+v", got.Defaults)
	}

	saved := models.NewSettings()
	saved.Defaults.Version = "9.9"
	if err := SaveYAML(path, saved); err != nil {
		t.Fatal(err)
	}

	got, err = LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		t.Fatal(err)
	}
	if got.Defaults.Version != "9.9" {
		t.Errorf("loaded version = %q, want saved value", got.Defaults.Version)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings without file: %v", err)
	}
	if settings.Defaults.Folder != "./starlog" {
		t.Errorf("default folder = %q", settings.Defaults.Folder)
	}

	settings.Defaults.Folder = "/data/experiments"
	if err := SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	reloaded, err := LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Defaults.Folder != "/data/experiments" {
		t.Errorf("reloaded folder = %q", reloaded.Defaults.Folder)
	}
}
