// Package config loads the application configuration from a TOML file,
// falling back to built-in defaults when no file exists.
//
// The config file lives at $XDG_CONFIG_HOME/wardrobe/config.toml (or
// ~/.config/wardrobe/config.toml). Every field is optional; file values
// overlay the defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jammo/wardrobe/pkg/errors"
)

// appName is the application name used for config directories.
const appName = "wardrobe"

// Config holds the application settings.
type Config struct {
	Frame  FrameConfig  `toml:"frame"`
	Editor EditorConfig `toml:"editor"`
	Colors ColorConfig  `toml:"colors"`
}

// FrameConfig holds default and limit dimensions for new frames, in
// millimeters.
type FrameConfig struct {
	DefaultWidth  float64 `toml:"default_width"`
	DefaultHeight float64 `toml:"default_height"`
	DefaultDepth  float64 `toml:"default_depth"`

	PanelThickness float64 `toml:"panel_thickness"`

	MinWidth  float64 `toml:"min_width"`
	MaxWidth  float64 `toml:"max_width"`
	MinHeight float64 `toml:"min_height"`
	MaxHeight float64 `toml:"max_height"`
	MinDepth  float64 `toml:"min_depth"`
	MaxDepth  float64 `toml:"max_depth"`
}

// EditorConfig holds interactive editing settings.
type EditorConfig struct {
	GridSize       float64 `toml:"grid_size"`
	DefaultZoom    float64 `toml:"default_zoom"`
	MinZoom        float64 `toml:"min_zoom"`
	MaxZoom        float64 `toml:"max_zoom"`
	ZoomStep       float64 `toml:"zoom_step"`
	MaxUndoHistory int     `toml:"max_undo_history"`
}

// ColorConfig maps drawing roles to hex colors.
type ColorConfig struct {
	Frame      string `toml:"frame"`
	Panel      string `toml:"panel"`
	Shelf      string `toml:"shelf"`
	Divider    string `toml:"divider"`
	Drawer     string `toml:"drawer"`
	Door       string `toml:"door"`
	Rail       string `toml:"rail"`
	Background string `toml:"background"`
	Selection  string `toml:"selection"`
	Hover      string `toml:"hover"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Frame: FrameConfig{
			DefaultWidth:   4800,
			DefaultHeight:  2400,
			DefaultDepth:   600,
			PanelThickness: 18,
			MinWidth:       300,
			MaxWidth:       6000,
			MinHeight:      300,
			MaxHeight:      3000,
			MinDepth:       200,
			MaxDepth:       1000,
		},
		Editor: EditorConfig{
			GridSize:       25,
			DefaultZoom:    1.0,
			MinZoom:        0.1,
			MaxZoom:        5.0,
			ZoomStep:       0.1,
			MaxUndoHistory: 50,
		},
		Colors: ColorConfig{
			Frame:      "#8B4513",
			Panel:      "#DEB887",
			Shelf:      "#D2B48C",
			Divider:    "#BC8F8F",
			Drawer:     "#F4A460",
			Door:       "#CD853F",
			Rail:       "#A0A0A0",
			Background: "#FFFFFF",
			Selection:  "#0078D7",
			Hover:      "#ADD8E6",
		},
	}
}

// Path returns the config file location using the XDG standard
// (~/.config/wardrobe/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load returns the configuration from the default path, overlaid on the
// defaults. A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit TOML file, overlaid on
// the defaults. A missing file returns the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "unknown config key: %s", undec[0].String())
	}
	return cfg, nil
}
