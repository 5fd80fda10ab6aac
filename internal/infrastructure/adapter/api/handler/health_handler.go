package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether a dependency answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and database reachability
type HealthHandler struct {
	database Pinger
	logger   coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(database Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{database: database, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.database.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "ok"})
}
