package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	DBPath    string     `mapstructure:"db_path" yaml:"db_path"`
	ExportDir string     `mapstructure:"export_dir" yaml:"export_dir"`
	Locales   []string   `mapstructure:"locales" yaml:"locales"`
	Netsh     ToolConfig `mapstructure:"netsh" yaml:"netsh"`
}

// ToolConfig represents configuration for the external wireless tool
type ToolConfig struct {
	Path     string `mapstructure:"path" yaml:"path"`
	Timeout  string `mapstructure:"timeout" yaml:"timeout"`
	Codepage string `mapstructure:"codepage" yaml:"codepage"`
}

// TimeoutDuration parses the configured per-invocation timeout.
func (t ToolConfig) TimeoutDuration() (time.Duration, error) {
	if t.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(t.Timeout)
}

// Load reads and parses configuration from a YAML file
// If path is empty, searches for wlankeys.yaml in current directory and ~/.config/wlankeys/
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		// Use explicit path
		v.SetConfigFile(path)
	} else {
		// Search for config in default locations
		v.SetConfigName("wlankeys")
		v.AddConfigPath(".")

		homeDir, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "wlankeys"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path cannot be empty"))
	}

	if c.ExportDir == "" {
		errs = append(errs, errors.New("export_dir cannot be empty"))
	}

	if _, err := c.Netsh.TimeoutDuration(); err != nil {
		errs = append(errs, fmt.Errorf("netsh.timeout is not a valid duration: %w", err))
	}

	switch c.Netsh.Codepage {
	case "", "cp866", "none":
	default:
		errs = append(errs, fmt.Errorf("netsh.codepage must be cp866 or none, got %q", c.Netsh.Codepage))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
