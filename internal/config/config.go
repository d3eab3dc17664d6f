package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Journal JournalConfig
	Log     LogConfig
	UI      UIConfig
}

// JournalConfig holds shift-log storage settings. An empty path keeps the
// log in memory for the lifetime of the process.
type JournalConfig struct {
	Path string
}

// LogConfig holds diagnostic logging settings. An empty path discards logs.
type LogConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen    bool   `mapstructure:"alt_screen"`
	CellWidth    int    `mapstructure:"cell_width"`
	Timezone     string
	TimeFormat   string `mapstructure:"time_format"`
	ConfirmReset bool   `mapstructure:"confirm_reset"`
}

// Path returns the config file location. FLOORBOARD_CONFIG overrides the
// default under ~/.config/floorboard.
func Path() string {
	if p := os.Getenv("FLOORBOARD_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "floorboard", "config.toml")
}

func newViper() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("journal.path", "")
	v.SetDefault("log.path", "")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.cell_width", 6)
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.time_format", "15:04:05")
	v.SetDefault("ui.confirm_reset", true)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("FLOORBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from file and env. Env var overrides use prefix
// FLOORBOARD_. found reports whether a config file was read.
func Load() (cfg Config, found bool, err error) {
	v := newViper()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, false, fmt.Errorf("read config: %w", err)
		}
	} else {
		found = true
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, false, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.UI.CellWidth < 3 {
		cfg.UI.CellWidth = 3
	}
	return cfg, found, nil
}

// Save writes cfg to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("journal.path", cfg.Journal.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("ui.cell_width", cfg.UI.CellWidth)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.time_format", cfg.UI.TimeFormat)
	v.Set("ui.confirm_reset", cfg.UI.ConfirmReset)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
