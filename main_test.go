package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/banshee-data/kinemetry/internal/units"
)

func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := resolveConfig("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetUnits() != units.M {
		t.Errorf("default units = %q, want m", cfg.GetUnits())
	}
}

func TestResolveConfig_UnitsOverride(t *testing.T) {
	cfg, err := resolveConfig("", units.FTIN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetUnits() != units.FTIN {
		t.Errorf("units = %q, want ftin", cfg.GetUnits())
	}
}

func TestResolveConfig_InvalidUnits(t *testing.T) {
	if _, err := resolveConfig("", "cubits"); err == nil {
		t.Fatal("expected error for invalid units")
	}
}

func TestResolveConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(`{"units": "cm"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetUnits() != "cm" {
		t.Errorf("units = %q, want cm", cfg.GetUnits())
	}

	// Flag override beats the file.
	cfg, err = resolveConfig(path, units.M)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetUnits() != units.M {
		t.Errorf("units = %q, want m", cfg.GetUnits())
	}
}
