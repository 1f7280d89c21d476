package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentilabel/internal/models"
)

func (s *Server) HandleHealth(c *gin.Context) {
	if s.scorerHealthy.Load() {
		c.JSON(http.StatusOK, models.HealthResponse{Status: "ok", Scorer: "healthy"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, models.HealthResponse{Status: "degraded", Scorer: "unhealthy"})
}
