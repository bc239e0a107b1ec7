package main

import (
	"log"

	"go-hrms/internal/app"
	"go-hrms/internal/bootstrap"
	"go-hrms/internal/config"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	apperror.Init()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(zl),
		middleware.RequestID(),
		middleware.ContextLogger(zl),
		middleware.RequestLogger(zl),
		middleware.CORS(),
	)

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg, zl)
	if err != nil {
		zl.Fatal("build app failed", zap.Error(err))
	}

	if err := bootstrap.StartHTTPServer(r, cfg.HTTP, cleanup); err != nil {
		zl.Fatal("http server failed", zap.Error(err))
	}
}
