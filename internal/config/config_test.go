package config_test

import (
	"testing"
	"time"

	"go-hrms/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.HTTP.Port)
	assert.Equal(t, ":8000", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5, cfg.Database.ConnectRetries)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Redis.CacheEnabled())
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REDIS_CACHE_TTL", "5m")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr())
	assert.Equal(t, config.DriverMySQL, cfg.Database.Driver)
	assert.True(t, cfg.Redis.CacheEnabled())
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("postgres discrete fields", func(t *testing.T) {
		c := config.DatabaseConfig{
			Driver: config.DriverPostgres, Host: "db", Port: "5432",
			User: "u", Password: "p", Name: "hrms", SSLMode: "disable",
		}
		assert.Equal(t, "host=db user=u password=p dbname=hrms port=5432 sslmode=disable", c.DSN())
	})

	t.Run("mysql discrete fields", func(t *testing.T) {
		c := config.DatabaseConfig{
			Driver: config.DriverMySQL, Host: "db", Port: "3306",
			User: "u", Password: "p", Name: "hrms",
		}
		assert.Equal(t, "u:p@tcp(db:3306)/hrms?charset=utf8mb4&parseTime=True&loc=UTC", c.DSN())
	})

	t.Run("url wins and driver suffix is stripped", func(t *testing.T) {
		c := config.DatabaseConfig{
			Driver: config.DriverPostgres,
			URL:    "postgresql+asyncpg://u:p@db:5432/hrms",
			Host:   "ignored",
		}
		assert.Equal(t, "postgresql://u:p@db:5432/hrms", c.DSN())
	})

	t.Run("redacted url hides password", func(t *testing.T) {
		c := config.DatabaseConfig{URL: "postgresql://u:secret@db:5432/hrms"}
		assert.NotContains(t, c.RedactedDSN(), "secret")
	})
}
