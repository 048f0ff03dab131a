package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Data sources the snapshot can be loaded from.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceRedis    = "redis"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	SwaggerEnabled bool
}

// DataConfig selects where the inventory snapshot comes from.
type DataConfig struct {
	Source         string
	File           string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string
}

type LogConfig struct {
	Level  string
	Format string
}

// RateLimitConfig configures the per-client token bucket. RPS 0 disables it.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// AuthConfig enables the bearer token guard when JWTSecret is set.
type AuthConfig struct {
	JWTSecret string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("http_read_timeout", "15s")
	v.SetDefault("http_write_timeout", "15s")
	v.SetDefault("http_idle_timeout", "60s")
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("swagger_enabled", true)

	v.SetDefault("data_source", SourceEmbedded)
	v.SetDefault("data_file", "data/inventory.json")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_key_prefix", "inventory")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("rate_limit_rps", 0)
	v.SetDefault("rate_limit_burst", 10)

	v.SetDefault("auth_jwt_secret", "")
}

// Load reads environment variables (optionally from the provided .env file
// and the file named by CONFIG_FILE) and materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		// a missing .env is fine when configuration comes from the environment
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed reading config file %s: %w", file, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("port"),
			ReadTimeout:    v.GetDuration("http_read_timeout"),
			WriteTimeout:   v.GetDuration("http_write_timeout"),
			IdleTimeout:    v.GetDuration("http_idle_timeout"),
			AllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
			SwaggerEnabled: v.GetBool("swagger_enabled"),
		},
		Data: DataConfig{
			Source:         strings.ToLower(v.GetString("data_source")),
			File:           v.GetString("data_file"),
			DatabaseURL:    v.GetString("database_url"),
			RedisAddr:      v.GetString("redis_addr"),
			RedisPassword:  v.GetString("redis_password"),
			RedisDB:        v.GetInt("redis_db"),
			RedisKeyPrefix: v.GetString("redis_key_prefix"),
		},
		Log: LogConfig{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("rate_limit_rps"),
			Burst: v.GetInt("rate_limit_burst"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth_jwt_secret"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures that the configuration is usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Server.Port)
	}

	switch c.Data.Source {
	case SourceEmbedded:
	case SourceFile:
		if c.Data.File == "" {
			return errors.New("DATA_FILE must be provided for the file data source")
		}
	case SourcePostgres:
		if c.Data.DatabaseURL == "" {
			return errors.New("DATABASE_URL must be provided for the postgres data source")
		}
	case SourceRedis:
		if c.Data.RedisAddr == "" {
			return errors.New("REDIS_ADDR must be provided for the redis data source")
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be one of: %s, %s, %s, %s",
			SourceEmbedded, SourceFile, SourcePostgres, SourceRedis)
	}

	if c.RateLimit.RPS < 0 {
		return errors.New("RATE_LIMIT_RPS must be >= 0")
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return errors.New("RATE_LIMIT_BURST must be >= 1 when rate limiting is enabled")
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
