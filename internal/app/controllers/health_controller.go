package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academies/internal/app/models/dto"
	"github.com/yigit/academies/internal/pkg/logger"
)

// Pinger reports whether a backing service is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports service health
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health checks the database connection
// @Summary Service health
// @Description Reports whether the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse} "Service healthy"
// @Failure 503 {object} dto.APIResponse{data=dto.HealthResponse} "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check failed to reach database")
		ctx.JSON(http.StatusServiceUnavailable, dto.NewAPIResponse(dto.HealthResponse{Status: "degraded", Database: "down"}))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.HealthResponse{Status: "ok", Database: "up"}))
}
