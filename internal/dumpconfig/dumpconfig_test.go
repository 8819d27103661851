package dumpconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.BytesPerLine != 16 || !cfg.Permissive || cfg.Color {
		t.Errorf("Default() = %+v", cfg)
	}
}

func TestLoadOverlaysOnlyDefinedKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pbdump.toml")
	if err := os.WriteFile(path, []byte("bytes_per_line = 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BytesPerLine != 32 {
		t.Errorf("bytes_per_line should be overlaid to 32, got %d", cfg.BytesPerLine)
	}
	if !cfg.Permissive {
		t.Error("permissive was not set in the file, so it should keep its default (true)")
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a nonexistent file should return an error")
	}
}
