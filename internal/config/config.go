// Package config loads runtime settings from the environment. A .env file in
// the working directory is read first when present.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Log      LogConfig
}

type AppConfig struct {
	Name    string `envconfig:"APP_NAME" default:"HRMS Backend API"`
	Version string `envconfig:"APP_VERSION" default:"1.0.0"`
	Env     string `envconfig:"APP_ENV" default:"development"`
}

type HTTPConfig struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`

	// Requests per second allowed per client IP on write endpoints.
	WriteRateLimit float64 `envconfig:"HTTP_WRITE_RATE_LIMIT" default:"10"`
	WriteRateBurst int     `envconfig:"HTTP_WRITE_RATE_BURST" default:"20"`
}

type DatabaseConfig struct {
	Driver string `envconfig:"DB_DRIVER" default:"postgres"`

	// URL takes precedence over the discrete fields below.
	URL      string `envconfig:"DATABASE_URL"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"hrms"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnectRetries  int           `envconfig:"DB_CONNECT_RETRIES" default:"5"`
	RetryDelay      time.Duration `envconfig:"DB_RETRY_DELAY" default:"5s"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	LogQueries      bool          `envconfig:"DB_LOG_QUERIES" default:"false"`
}

// RedisConfig enables the department list cache when Addr is set.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"30m"`
	Retries  int           `envconfig:"REDIS_CONNECT_RETRIES" default:"5"`
}

// KafkaConfig enables employee lifecycle events when Brokers is set.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads every section from the environment. Sections are processed one
// by one so variable names stay flat (PORT, DB_HOST) instead of being
// prefixed with the section name.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	sections := map[string]any{
		"app":      &cfg.App,
		"http":     &cfg.HTTP,
		"database": &cfg.Database,
		"redis":    &cfg.Redis,
		"kafka":    &cfg.Kafka,
		"log":      &cfg.Log,
	}
	for name, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", name, err)
		}
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *DatabaseConfig) validate() error {
	switch c.Driver {
	case DriverPostgres, DriverMySQL:
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
}

// DSN returns the connection string for the configured driver.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		if c.Driver == DriverPostgres {
			return normalizePostgresURL(c.URL)
		}
		return c.URL
	}

	if c.Driver == DriverMySQL {
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.Name,
		)
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// RedactedDSN is safe to log.
func (c *DatabaseConfig) RedactedDSN() string {
	if c.URL != "" {
		u, err := url.Parse(c.URL)
		if err != nil {
			return "<invalid url>"
		}
		return u.Redacted()
	}
	return fmt.Sprintf("%s@%s:%s/%s", c.User, c.Host, c.Port, c.Name)
}

// Driver-qualified schemes such as postgresql+asyncpg:// are rewritten to
// the plain scheme pgx understands.
func normalizePostgresURL(raw string) string {
	if i := strings.Index(raw, "://"); i > 0 {
		scheme := raw[:i]
		if j := strings.Index(scheme, "+"); j > 0 {
			return scheme[:j] + raw[i:]
		}
	}
	return raw
}

// Addr returns the HTTP listen address.
func (c HTTPConfig) Addr() string {
	return ":" + c.Port
}

// CacheEnabled reports whether a Redis address was configured.
func (c RedisConfig) CacheEnabled() bool {
	return c.Addr != ""
}

// Enabled reports whether at least one broker was configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}
