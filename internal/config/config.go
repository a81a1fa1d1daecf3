// Package config loads settings from an optional config file and GHOST_*
// environment variables.
package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/mcoot/ghostgame/internal/model"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "GHOST"

// Config holds the application settings
type Config struct {
	DictionaryPath  string `mapstructure:"dictionary_path"`
	StorageType     string `mapstructure:"storage_type"`
	RedisURL        string `mapstructure:"redis_url"`
	HTTPPort        int    `mapstructure:"http_port"`
	LogLevel        string `mapstructure:"log_level"`
	DefaultStrategy string `mapstructure:"default_strategy"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary_path", "data/words.txt")
	v.SetDefault("storage_type", "memory")
	v.SetDefault("redis_url", "redis://localhost:6379")
	v.SetDefault("http_port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("default_strategy", model.DefaultBotStrategy)
}

// Load reads configuration. path may be empty, in which case only defaults
// and the environment are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.StorageType {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid storage_type %q: must be memory or redis", c.StorageType)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port %d", c.HTTPPort)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if !slices.Contains(model.ValidBotStrategies(), c.DefaultStrategy) {
		return fmt.Errorf("invalid default_strategy %q: %w", c.DefaultStrategy, model.ErrUnknownStrategy)
	}
	return nil
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", s)
	}
	return level, nil
}
