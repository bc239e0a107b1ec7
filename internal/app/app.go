package app

import (
	"context"

	"go-hrms/internal/config"
	"go-hrms/internal/department"
	"go-hrms/internal/employee"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/system"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the backing stores, creates tables when enabled and
// registers every route on router. The returned cleanup releases what was
// opened and must be called once the server has stopped.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	if cfg.Database.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			_ = connection.CloseGORM(gormDB)
			return nil, err
		}
		log.Info("database schema migrated")
	}

	var rdb *redis.Client
	if cfg.Redis.CacheEnabled() {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis, log)
		if err != nil {
			// The cache is optional, run without it.
			log.Warn("redis unavailable, department cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	publisher := employee.NewNoopEventPublisher()
	var closeWriter func() error
	if cfg.Kafka.Enabled() {
		writer := kafka.NewWriter(cfg.Kafka)
		publisher = employee.NewKafkaEventPublisher(writer)
		closeWriter = writer.Close
		log.Info("employee events enabled", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	registerModules(router, cfg, gormDB, rdb, publisher, logger)

	cleanup := func() {
		if closeWriter != nil {
			if err := closeWriter(); err != nil {
				log.Warn("close kafka writer failed", zap.Error(err))
			}
		}
		if rdb != nil {
			if err := rdb.Close(); err != nil {
				log.Warn("close redis failed", zap.Error(err))
			}
		}
		if err := connection.CloseGORM(gormDB); err != nil {
			log.Warn("close database failed", zap.Error(err))
		}
	}

	return cleanup, nil
}

// Migrate creates the departments and employees tables with their unique
// indexes and the cascading foreign key.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&department.Department{}, &employee.Employee{})
}

func dbPinger(db *gorm.DB) system.Pinger {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func redisPinger(rdb *redis.Client) system.Pinger {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
