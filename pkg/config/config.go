// Package config loads console settings from .quickadb config files and
// QUICKADB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/quickadb/pkg/registry"
)

// Config holds the console settings.
type Config struct {
	Title         string   `mapstructure:"title"`
	VersionBanner string   `mapstructure:"version_banner"`
	Welcome       string   `mapstructure:"welcome"`
	Placeholder   string   `mapstructure:"placeholder"`
	HelpLine      string   `mapstructure:"help_line"`
	Commands      []string `mapstructure:"commands"`
	LogLevel      string   `mapstructure:"log_level"`
	LogFile       string   `mapstructure:"log_file"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Load reads the config. Search order: $QUICKADB_CONFIG_PATH, the home
// directory, then the working directory. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(".quickadb") // .yaml is implicit
	v.SetEnvPrefix("QUICKADB")
	v.AutomaticEnv()

	if override := os.Getenv("QUICKADB_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./")

	return read(v)
}

// LoadFile reads an explicit config file.
func LoadFile(path string) (*Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand config path %q: %w", path, err)
	}
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("QUICKADB")
	v.AutomaticEnv()
	v.SetConfigFile(expanded)
	return read(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "QUICK ADB")
	v.SetDefault("version_banner", "quick-adb v0.0.1")
	v.SetDefault("welcome", "Welcome to the prototype. Type a command below.")
	v.SetDefault("placeholder", "Type a command. Use '/' to trigger completions.")
	v.SetDefault("help_line", "Help: Type commands. '/' triggers completions. Enter to run.")
	v.SetDefault("commands", registry.Default().Names())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

func read(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if cfg.LogFile != "" {
		expanded, err := homedir.Expand(cfg.LogFile)
		if err != nil {
			return nil, fmt.Errorf("expand log_file %q: %w", cfg.LogFile, err)
		}
		cfg.LogFile = expanded
	}
	return cfg, nil
}

// Registry builds the command catalog from the configured names.
func (c *Config) Registry() *registry.Registry {
	return registry.FromNames(c.Commands...)
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() (slog.Level, error) {
	return ParseLevel(c.LogLevel)
}

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
