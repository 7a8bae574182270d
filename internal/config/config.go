// Package config loads process configuration from the environment.
//
// Variables are read with the BOOKINGS_ prefix. The first underscore after the
// section name separates section and key, so BOOKINGS_DATABASE_SSL_MODE maps to
// database.ssl_mode. A .env file in the working directory is loaded first.
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "BOOKINGS_"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
}

// Primary describes the runtime environment.
type Primary struct {
	Env      string `koanf:"env" validate:"required,oneof=development production test"`
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DatabaseConfig holds the connection parameters supplied once at start-up.
type DatabaseConfig struct {
	Driver   string `koanf:"driver" validate:"required,oneof=postgres sqlite"`
	Name     string `koanf:"name" validate:"required_if=Driver postgres"`
	User     string `koanf:"user" validate:"required_if=Driver postgres"`
	Password string `koanf:"password"`
	Host     string `koanf:"host" validate:"required_if=Driver postgres"`
	Port     int    `koanf:"port" validate:"required_if=Driver postgres,omitempty,min=1,max=65535"`
	SSLMode  string `koanf:"ssl_mode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	Schema   string `koanf:"schema" validate:"omitempty,max=63"`
	// DSN is the database file (or URI) for the sqlite driver.
	DSN string `koanf:"dsn" validate:"required_if=Driver sqlite"`

	MaxOpenConns        int `koanf:"max_open_conns" validate:"min=1"`
	ConnectAttempts     int `koanf:"connect_attempts" validate:"min=1"`
	ConnectRetryDelayMs int `koanf:"connect_retry_delay_ms" validate:"min=0"`
}

type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
	RateLimitPerSecond float64  `koanf:"rate_limit_per_second" validate:"gt=0"`
	RateLimitBurst     int      `koanf:"rate_limit_burst" validate:"min=1"`
}

// Default returns the configuration used for any key not present in the
// environment.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env:      "development",
			LogLevel: "info",
		},
		Database: DatabaseConfig{
			Driver:              DriverPostgres,
			Name:                "demo",
			Host:                "127.0.0.1",
			Port:                5432,
			SSLMode:             "disable",
			Schema:              "bookings",
			MaxOpenConns:        1,
			ConnectAttempts:     10,
			ConnectRetryDelayMs: 500,
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        15,
			WriteTimeout:       15,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"http://localhost:8081"},
			RateLimitPerSecond: 20,
			RateLimitBurst:     40,
		},
	}
}

// Load reads BOOKINGS_* variables over the defaults and validates the result.
func Load() (*Config, error) {
	return load(env.Provider(envPrefix, ".", envKey))
}

func load(provider koanf.Provider) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// envKey turns BOOKINGS_DATABASE_SSL_MODE into database.ssl_mode.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// RetryDelay is the pause between connection attempts.
func (d DatabaseConfig) RetryDelay() time.Duration {
	return time.Duration(d.ConnectRetryDelayMs) * time.Millisecond
}

// PostgresDSN builds the lib/pq connection URL. Credentials and names are
// escaped, so any password the server accepts can be used. The search_path
// pins unqualified table names to the configured schema.
func (d DatabaseConfig) PostgresDSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q := url.Values{}
	q.Set("sslmode", sslMode)
	if d.Schema != "" {
		q.Set("search_path", d.Schema)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}
