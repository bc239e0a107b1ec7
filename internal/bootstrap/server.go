package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go-hrms/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StartHTTPServer runs router until SIGINT or SIGTERM, then drains in-flight
// requests within cfg.ShutdownTimeout and calls onShutdown.
func StartHTTPServer(
	router *gin.Engine,
	cfg config.HTTPConfig,
	onShutdown func(),
) error {
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("HTTP server running", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var serveErr error
	select {
	case sig := <-quit:
		zap.L().Info("shutdown signal received", zap.String("signal", sig.String()))
	case serveErr = <-errCh:
		zap.L().Error("ListenAndServe error", zap.Error(serveErr))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("forced shutdown", zap.Error(err))
	} else {
		zap.L().Info("server exited gracefully")
	}

	if onShutdown != nil {
		onShutdown()
	}

	return serveErr
}
