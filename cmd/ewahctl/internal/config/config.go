// Package config loads ewahctl's optional TOML configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents ewahctl's configuration.
type Config struct {
	Output struct {
		Format   string `toml:"format"` // "text" or "positions"
		HexWords bool   `toml:"hex_words"`
	} `toml:"output"`

	Logging struct {
		Level string `toml:"level"` // logrus level name
	} `toml:"logging"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Output.Format = "text"
	cfg.Output.HexWords = false
	cfg.Logging.Level = "warn"
	return cfg
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/ewahctl/config.toml falling back to ~/.ewahctl.toml.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ewahctl", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ewahctl.toml"
	}
	return filepath.Join(home, ".ewahctl.toml")
}

// Load reads and parses the TOML file at path, layering it over the
// defaults. A missing file is not an error; it just yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
