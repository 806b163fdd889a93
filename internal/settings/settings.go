// Package settings persists user preferences for the calendar: language,
// first weekday, numeral system and holiday mode.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/dagimg-dot/EthCal/internal/holiday"
	"github.com/spf13/viper"
)

const fileName = "config.yaml"

// Settings are the persisted preferences. Field values are validated on
// load and before save; a missing file yields Default().
type Settings struct {
	Language  string `mapstructure:"language"`
	WeekStart int    `mapstructure:"week_start"`
	UseGeez   bool   `mapstructure:"use_geez"`
	Mode      string `mapstructure:"mode"`
}

// Default returns the out-of-the-box preferences.
func Default() Settings {
	return Settings{
		Language:  string(ethiopic.Amharic),
		WeekStart: 1, // Monday
		UseGeez:   false,
		Mode:      string(holiday.ModeAll),
	}
}

// Dir returns the settings directory, creating nothing.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "ethcal"), nil
}

// Validate checks every field the way the services would.
func (s Settings) Validate() error {
	if _, err := ethiopic.ParseLanguage(s.Language); err != nil {
		return err
	}
	if s.WeekStart < 0 || s.WeekStart > 6 {
		return fmt.Errorf("week_start %d out of range [0,6]", s.WeekStart)
	}
	if _, err := holiday.ParseMode(s.Mode); err != nil {
		return err
	}
	return nil
}

// Load reads settings from dir. A missing config file is not an error;
// it returns the defaults.
func Load(dir string) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, fileName))
	v.SetConfigType("yaml")

	defaults := Default()
	v.SetDefault("language", defaults.Language)
	v.SetDefault("week_start", defaults.WeekStart)
	v.SetDefault("use_geez", defaults.UseGeez)
	v.SetDefault("mode", defaults.Mode)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save validates and writes settings to dir, creating it if needed.
func Save(dir string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	v := viper.New()
	v.Set("language", s.Language)
	v.Set("week_start", s.WeekStart)
	v.Set("use_geez", s.UseGeez)
	v.Set("mode", s.Mode)
	return v.WriteConfigAs(filepath.Join(dir, fileName))
}
