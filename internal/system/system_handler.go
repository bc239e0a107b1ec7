package system

import (
	"context"
	"net/http"
	"time"

	"go-hrms/internal/config"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	stateConnected  = "connected"

	checkTimeout = 2 * time.Second
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

type BannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Redoc   string `json:"redoc"`
}

// HealthResponse omits Cache when no cache is configured.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache,omitempty"`
}

type Handler struct {
	app    config.AppConfig
	db     Pinger
	cache  Pinger
	logger *zap.Logger
}

// NewHandler builds the banner and health endpoints. cache may be nil.
func NewHandler(app config.AppConfig, db Pinger, cache Pinger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("system.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("system.handler")
	}
	return &Handler{app: app, db: db, cache: cache, logger: l}
}

func (h *Handler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, BannerResponse{
		Message: "Welcome to " + h.app.Name,
		Version: h.app.Version,
		Docs:    "/docs",
		Redoc:   "/redoc",
	})
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	resp := HealthResponse{Status: statusHealthy, Database: stateConnected}
	status := http.StatusOK

	if err := h.db(ctx); err != nil {
		h.logger.Error("database health check failed", zap.Error(err))
		resp.Status = statusUnhealthy
		resp.Database = err.Error()
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		resp.Cache = stateConnected
		if err := h.cache(ctx); err != nil {
			h.logger.Error("cache health check failed", zap.Error(err))
			resp.Status = statusUnhealthy
			resp.Cache = err.Error()
			status = http.StatusServiceUnavailable
		}
	}

	response.Success(c, status, resp)
}

func RegisterRoutes(r gin.IRoutes, h *Handler) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
}
