// Package config holds the settings of the charsets command, read from a
// TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the on-disk configuration of the charsets command.
//
//	table    = "/etc/charsets/custom.yaml" # optional custom table
//	format   = "json"                      # text | json
//	language = "ja"                        # en | ja
type Config struct {
	Table    string `toml:"table"`
	Format   string `toml:"format"`
	Language string `toml:"language"`
}

// Default returns the built-in settings: IANA table, text output, English.
func Default() Config {
	return Config{Format: FormatText, Language: "en"}
}

// DefaultPath returns $XDG_CONFIG_HOME/charsets/config.toml (or the
// platform equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "charsets", "config.toml")
}

// Load reads path over Default. A missing file is not an error when
// optional is true.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return cfg, fmt.Errorf("config: %s: unknown key %q", path, und[0].String())
	}
	if cfg.Table != "" && !filepath.IsAbs(cfg.Table) {
		cfg.Table = filepath.Join(filepath.Dir(path), cfg.Table)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("config: format must be %q or %q, got %q", FormatText, FormatJSON, c.Format)
	}
	switch c.Language {
	case "en", "ja":
	default:
		return fmt.Errorf("config: language must be \"en\" or \"ja\", got %q", c.Language)
	}
	return nil
}
