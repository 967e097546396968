// Package config loads the template's settings: defaults, then an optional
// config file, then TYG_* environment variables. Flags are bound on top by
// the command layer. Settings are read once at startup and never mutated.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Color output modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings is the resolved, read-only configuration.
type Settings struct {
	Debug bool   `mapstructure:"debug"`
	Color string `mapstructure:"color"`
}

// Load resolves settings for the given config directory (usually the user's
// config dir; empty skips the file lookup). A missing config file is not an
// error; a malformed one is.
func Load(configDir string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(filepath.Join(configDir, "tyg_template"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("TYG")
	v.AutomaticEnv()

	v.SetDefault("debug", false)
	v.SetDefault("color", ColorAuto)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want %s, %s or %s)", s.Color, ColorAuto, ColorAlways, ColorNever)
	}
}
