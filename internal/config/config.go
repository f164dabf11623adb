// Package config loads runtime configuration from the environment and an
// optional config file.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/warbandforge/warband-api/internal/errors"
)

// RedisConfig holds connection settings for Redis.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	PoolSize int    `mapstructure:"pool_size"`
	UseTLS   bool   `mapstructure:"use_tls"`
}

// RulesConfig holds game-rule toggles.
type RulesConfig struct {
	EnforceWeaponFactionRestriction bool `mapstructure:"enforce_weapon_faction_restriction"`
}

// Config is the application configuration.
type Config struct {
	LogLevel string      `mapstructure:"log_level"`
	Redis    RedisConfig `mapstructure:"redis"`
	Rules    RulesConfig `mapstructure:"rules"`
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("redis.address", c.Redis.Address, vb)
	return vb.Build()
}

// Load reads configuration from the environment (prefix WARBAND, dots as
// underscores) and, when path is non-empty, a YAML config file. Environment
// values win over the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.use_tls", false)
	v.SetDefault("rules.enforce_weapon_faction_restriction", false)

	v.SetEnvPrefix("WARBAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
