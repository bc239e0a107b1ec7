package app

import (
	"go-hrms/internal/config"
	"go-hrms/internal/department"
	"go-hrms/internal/employee"
	"go-hrms/internal/middleware"
	"go-hrms/internal/system"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	publisher employee.EventPublisher,
	logger *zap.Logger,
) {
	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, rdb, cfg.Redis.CacheTTL, logger)
	employeeService := employee.NewService(employeeRepo, departmentRepo, publisher, logger)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)

	var cachePinger system.Pinger
	if rdb != nil {
		cachePinger = redisPinger(rdb)
	}
	systemHandler := system.NewHandler(cfg.App, dbPinger(gormDB), cachePinger, logger)

	// --- Routes Registration ---
	writeLimit := middleware.RateLimitByIP(rate.Limit(cfg.HTTP.WriteRateLimit), cfg.HTTP.WriteRateBurst)

	system.RegisterRoutes(router, systemHandler)

	api := router.Group("/api/v1")
	{
		department.RegisterRoutes(api, departmentHandler, writeLimit)
		employee.RegisterRoutes(api, employeeHandler, writeLimit)
	}
}
