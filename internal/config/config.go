package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no -config flag is provided.
const DefaultConfigPath = "config.yaml"

// Duration wraps time.Duration so YAML values like "30s" or "24h" parse
// naturally.
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, errParse := time.ParseDuration(strings.TrimSpace(value.Value))
	if errParse != nil {
		return fmt.Errorf("config: invalid duration %q: %w", value.Value, errParse)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the full application configuration loaded from YAML with
// CARDAPP_* environment overrides applied on top.
type Config struct {
	Listen   string         `yaml:"listen"`   // Server listen address.
	Database DatabaseConfig `yaml:"database"` // Database settings.
	JWT      JWTConfig      `yaml:"jwt"`      // Token signing settings.
	Redis    RedisConfig    `yaml:"redis"`    // Optional redis settings.
	Log      LogConfig      `yaml:"log"`      // Logging settings.
	API      APIConfig      `yaml:"api"`      // Console client settings.
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"` // Postgres URL/DSN or SQLite file path.
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret string   `yaml:"secret"` // HS256 signing secret.
	Expiry Duration `yaml:"expiry"` // Token lifetime.
}

// RedisConfig holds optional redis connection settings for token revocation.
type RedisConfig struct {
	Addr     string `yaml:"addr"` // Empty disables redis.
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"` // logrus level name.
	File       string `yaml:"file"`  // Empty logs to stderr.
	MaxSizeMB  int    `yaml:"max-size-mb"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAgeDays int    `yaml:"max-age-days"`
}

// APIConfig holds the console gateway client settings.
type APIConfig struct {
	BaseURL string   `yaml:"base-url"` // Backend base URL.
	Timeout Duration `yaml:"timeout"`  // Request timeout.
}

// ResolveConfigPath returns the provided path or the default when empty.
func ResolveConfigPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return DefaultConfigPath
	}
	return trimmed
}

// Load reads configuration from the given YAML file. A missing file is not an
// error: defaults plus environment overrides still apply.
func Load(path string) (Config, error) {
	cfg := defaults()

	data, errRead := os.ReadFile(ResolveConfigPath(path))
	switch {
	case errRead == nil:
		if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, errUnmarshal)
		}
	case os.IsNotExist(errRead):
		// Defaults and environment only.
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, errRead)
	}

	applyEnvOverrides(&cfg)

	if cfg.JWT.Expiry <= 0 {
		cfg.JWT.Expiry = Duration(24 * time.Hour)
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = Duration(10 * time.Second)
	}
	return cfg, nil
}

// defaults returns the built-in configuration.
func defaults() Config {
	return Config{
		Listen:   ":3000",
		Database: DatabaseConfig{DSN: "file:cardapp.db"},
		JWT:      JWTConfig{Expiry: Duration(24 * time.Hour)},
		Log:      LogConfig{Level: "info", MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 28},
		API:      APIConfig{BaseURL: "http://localhost:3000", Timeout: Duration(10 * time.Second)},
	}
}

// applyEnvOverrides overlays CARDAPP_* environment variables onto cfg.
func applyEnvOverrides(cfg *Config) {
	if v, ok := lookupEnv("CARDAPP_LISTEN"); ok {
		cfg.Listen = v
	}
	if v, ok := lookupEnv("CARDAPP_DATABASE_DSN"); ok {
		cfg.Database.DSN = v
	}
	if v, ok := lookupEnv("CARDAPP_JWT_SECRET"); ok {
		cfg.JWT.Secret = v
	}
	if v, ok := lookupEnv("CARDAPP_REDIS_ADDR"); ok {
		cfg.Redis.Addr = v
	}
	if v, ok := lookupEnv("CARDAPP_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookupEnv("CARDAPP_API_BASE_URL"); ok {
		cfg.API.BaseURL = v
	}
	if v, ok := lookupEnv("CARDAPP_API_TIMEOUT"); ok {
		if d, errParse := time.ParseDuration(v); errParse == nil && d > 0 {
			cfg.API.Timeout = Duration(d)
		}
	}
}

// lookupEnv returns a trimmed environment value when set and non-empty.
func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
