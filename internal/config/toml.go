// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Reading ReadingConfig `toml:"reading"`
	Top     TopConfig     `toml:"top"`
	History HistoryConfig `toml:"history"`
}

// ReadingConfig maps reading-time settings.
type ReadingConfig struct {
	WPM     *int  `toml:"wpm"`
	Verbose *bool `toml:"verbose"`
}

// TopConfig maps frequency table settings.
type TopConfig struct {
	Limit     *int    `toml:"limit"`
	Stopwords *string `toml:"stopwords"`
	SkipShort *int    `toml:"skip-short"`
}

// HistoryConfig maps analysis history settings.
type HistoryConfig struct {
	Enabled *bool `toml:"enabled"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
