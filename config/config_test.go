package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Oppenjaimer/6502-emulator/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.TraceLevel != "warn" {
		t.Errorf("TraceLevel = %q, want %q", cfg.TraceLevel, "warn")
	}
	if cfg.ClockHz != 1789773 {
		t.Errorf("ClockHz = %d, want 1789773", cfg.ClockHz)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`trace_level = "trace"`+"\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TraceLevel != "trace" {
		t.Errorf("TraceLevel = %q, want %q", cfg.TraceLevel, "trace")
	}
	if cfg.ClockHz != 1789773 {
		t.Errorf("ClockHz = %d, want default 1789773 (untouched by file)", cfg.ClockHz)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a missing file should return an error")
	}
}
