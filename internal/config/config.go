package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string        `mapstructure:"port"`
	LogLevel        string        `mapstructure:"log_level"`
	ChannelID       string        `mapstructure:"channel_id"`
	ChannelKey      string        `mapstructure:"channel_key"`
	ChannelKeyHash  string        `mapstructure:"channel_key_hash"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// AuthEnabled reports whether channel credentials are configured. With the
// empty defaults the API runs open.
func (c Config) AuthEnabled() bool {
	return c.ChannelID != "" && (c.ChannelKey != "" || c.ChannelKeyHash != "")
}

// Load reads configuration from the environment with PIP_-prefixed keys
// (PIP_PORT, PIP_LOG_LEVEL, PIP_CHANNEL_ID, ...) over built-in defaults.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("channel_id", "")
	v.SetDefault("channel_key", "")
	v.SetDefault("channel_key_hash", "")
	v.SetDefault("read_timeout", "15s")
	v.SetDefault("write_timeout", "15s")
	v.SetDefault("shutdown_timeout", "30s")

	v.SetEnvPrefix("PIP")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	cfg.ChannelID = strings.TrimSpace(cfg.ChannelID)
	cfg.ChannelKey = strings.TrimSpace(cfg.ChannelKey)
	cfg.ChannelKeyHash = strings.TrimSpace(cfg.ChannelKeyHash)

	return cfg, nil
}
