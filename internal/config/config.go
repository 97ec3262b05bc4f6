// Package config loads application settings from the environment.
//
// Variables use the CHAT_ prefix and a section name, e.g. CHAT_DATABASE_HOST
// maps to Config.Database.Host. A .env file in the working directory is
// loaded automatically when present.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix shared by every variable read by Load.
const EnvPrefix = "CHAT_"

// Config is the root configuration object for the application.
type Config struct {
	Primary  PrimaryConfig  `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Cache    CacheConfig    `koanf:"cache"`
}

// PrimaryConfig holds information about the runtime environment.
type PrimaryConfig struct {
	Env      string `koanf:"env" validate:"required,oneof=dev staging production"`
	LogLevel string `koanf:"log_level"`
}

// ServerConfig groups settings for the HTTP server.
type ServerConfig struct {
	Port string `koanf:"port" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host           string        `koanf:"host" validate:"required"`
	Port           int           `koanf:"port" validate:"required,gt=0"`
	User           string        `koanf:"user" validate:"required"`
	Password       string        `koanf:"password"`
	Name           string        `koanf:"name" validate:"required"`
	SSLMode        string        `koanf:"ssl_mode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"gt=0"`
}

// RedisConfig contains Redis connection details.
// An empty Address disables the room name cache.
type RedisConfig struct {
	Address  string `koanf:"address" validate:"omitempty,hostname_port"`
	Password string `koanf:"password"`
}

// CacheConfig tunes the room name cache.
type CacheConfig struct {
	RoomNameTTL time.Duration `koanf:"room_name_ttl" validate:"gte=0"`
}

// Load reads CHAT_* variables, applies defaults and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	// CHAT_DATABASE_SSL_MODE -> database.ssl_mode
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	applyDefaults(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Primary.Env == "" {
		cfg.Primary.Env = "dev"
	}
	if cfg.Primary.LogLevel == "" {
		cfg.Primary.LogLevel = "info"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.ConnectTimeout == 0 {
		cfg.Database.ConnectTimeout = 60 * time.Second
	}
	if cfg.Cache.RoomNameTTL == 0 {
		cfg.Cache.RoomNameTTL = 10 * time.Minute
	}
}
