// Package dumpconfig loads the optional TOML configuration file for the
// pbdump CLI.
package dumpconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config controls pbdump's hex-dump rendering. Load only overrides a
// Default() field when the TOML file
// explicitly defines the corresponding key, the same meta.IsDefined
// pattern edgectl's ghostctl config loader uses to distinguish absence
// from an explicit zero.
type Config struct {
	BytesPerLine int  `toml:"bytes_per_line"`
	Permissive   bool `toml:"permissive"`
	Color        bool `toml:"color"`
}

// Default returns pbdump's built-in defaults, used when no config file
// is given or a file omits a key.
func Default() Config {
	return Config{BytesPerLine: 16, Permissive: true, Color: false}
}

// Load reads path as a TOML file and overlays it onto Default().
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load pbdump config %s: %w", path, err)
	}

	if meta.IsDefined("bytes_per_line") {
		cfg.BytesPerLine = raw.BytesPerLine
	}
	if meta.IsDefined("permissive") {
		cfg.Permissive = raw.Permissive
	}
	if meta.IsDefined("color") {
		cfg.Color = raw.Color
	}
	return cfg, nil
}
