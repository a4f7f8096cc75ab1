package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jammo/wardrobe/pkg/errors"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Frame.DefaultWidth != 4800 || cfg.Frame.DefaultHeight != 2400 || cfg.Frame.DefaultDepth != 600 {
		t.Errorf("frame defaults = %vx%vx%v", cfg.Frame.DefaultWidth, cfg.Frame.DefaultHeight, cfg.Frame.DefaultDepth)
	}
	if cfg.Editor.GridSize != 25 {
		t.Errorf("GridSize = %v, want 25", cfg.Editor.GridSize)
	}
	if cfg.Editor.MaxUndoHistory != 50 {
		t.Errorf("MaxUndoHistory = %v, want 50", cfg.Editor.MaxUndoHistory)
	}
	if cfg.Colors.Frame != "#8B4513" {
		t.Errorf("frame color = %q", cfg.Colors.Frame)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile on missing file: %v", err)
	}
	if cfg != Default() {
		t.Error("missing file did not yield defaults")
	}
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[frame]
default_width = 3600.0

[editor]
grid_size = 50.0

[colors]
selection = "#FF0000"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Frame.DefaultWidth != 3600 {
		t.Errorf("DefaultWidth = %v, want 3600", cfg.Frame.DefaultWidth)
	}
	// Untouched fields keep their defaults.
	if cfg.Frame.DefaultHeight != 2400 {
		t.Errorf("DefaultHeight = %v, want 2400", cfg.Frame.DefaultHeight)
	}
	if cfg.Editor.GridSize != 50 {
		t.Errorf("GridSize = %v, want 50", cfg.Editor.GridSize)
	}
	if cfg.Colors.Selection != "#FF0000" {
		t.Errorf("Selection = %q", cfg.Colors.Selection)
	}
	if cfg.Colors.Hover != "#ADD8E6" {
		t.Errorf("Hover = %q, want default", cfg.Colors.Hover)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("frame = {"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error for malformed TOML")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestLoadFileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[frame]\nwitdh = 100.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	want := filepath.Join("/tmp/custom-config", appName, "config.toml")
	if path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}
