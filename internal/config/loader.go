package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFileName is the base name of the devloop config file.
const ConfigFileName = "devloop"

// EnvConfigPath is the environment variable naming an explicit config file.
const EnvConfigPath = "DEVLOOP_CONFIG_PATH"

// Loader handles Viper-based configuration loading.
//
// A missing config file is not an error: the defaults are used. A present
// but malformed file is.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with the standard search paths and the
// DEVLOOP_ environment prefix configured.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "devloop"))
	}
	v.SetEnvPrefix("DEVLOOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// Load reads the configuration and returns a validated [Config].
//
// Defaults come from [DefaultConfig]; a config file and DEVLOOP_ environment
// variables layer on top. DEVLOOP_CONFIG_PATH pins an explicit file and
// makes its absence an error.
func (l *Loader) Load() (*Config, error) {
	defaults := DefaultConfig()
	l.v.SetDefault("mode", defaults.Mode)
	l.v.SetDefault("entry", defaults.Entry)
	l.v.SetDefault("tools.format", defaults.Tools.Format)
	l.v.SetDefault("tools.lint", defaults.Tools.Lint)
	l.v.SetDefault("tools.test", defaults.Tools.Test)
	l.v.SetDefault("tools.cover", defaults.Tools.Cover)
	l.v.SetDefault("tools.cover_html", defaults.Tools.CoverHTML)
	l.v.SetDefault("tools.run", defaults.Tools.Run)
	l.v.SetDefault("coverage.profile", defaults.Coverage.Profile)
	l.v.SetDefault("coverage.html", defaults.Coverage.HTML)

	explicit := os.Getenv(EnvConfigPath)
	if explicit != "" {
		l.v.SetConfigFile(explicit)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
