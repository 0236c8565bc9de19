package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	ShutdownSeconds int    `mapstructure:"shutdown_seconds"`
}

type AdvisorConfig struct {
	// Endpoint is the calculation service's URL, e.g.
	// http://localhost:5000/api/calculate.
	Endpoint string `mapstructure:"endpoint"`
	// TimeoutSeconds bounds the outbound request; 0 means no deadline.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type CacheConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	RedisAddr  string `mapstructure:"redis_addr"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

type Config struct {
	Server   ServerConfig  `mapstructure:"server"`
	Advisor  AdvisorConfig `mapstructure:"advisor"`
	Cache    CacheConfig   `mapstructure:"cache"`
	Currency string        `mapstructure:"currency"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_seconds", 10)
	v.SetDefault("cache.ttl_seconds", 300)
	v.SetDefault("currency", "₹")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Advisor.Endpoint == "" {
		return nil, fmt.Errorf("advisor.endpoint is required")
	}
	return &cfg, nil
}
