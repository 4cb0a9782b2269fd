package appconfig

import (
	"os"
	"path/filepath"
)

// Config is the optional on-disk configuration. Everything has a
// working default; the file is only needed to change themes or tuning.
type Config struct {
	Theme          string  `mapstructure:"theme" yaml:"theme"`
	MaxLinesPerTab int     `mapstructure:"max_lines_per_tab" yaml:"max_lines_per_tab"`
	PollIntervalMS int     `mapstructure:"poll_interval_ms" yaml:"poll_interval_ms"`
	Logging        Logging `mapstructure:"logging" yaml:"logging"`
}

// Logging controls the structured log destination. The TUI owns stdout
// and stderr carries usage/fatal output, so logs go to a file or
// nowhere.
type Logging struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:          "standard",
		MaxLinesPerTab: 5000,
		PollIntervalMS: 50,
	}
}

// DefaultConfigPath is the per-user config location.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "streamtabs", "config.yaml"), nil
}
