package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ROUTE_INDEX   = "/"
	ROUTE_ANALYZE = "/analyze"
	ROUTE_HEALTH  = "/healthz"
	ROUTE_METRICS = "/metrics"
)

func (s *Server) registerRoutes(allowedOrigins []string) {
	s.engine.HandleMethodNotAllowed = true
	s.engine.Use(
		requestIDMiddleware(),
		metricsMiddleware(),
		loggingMiddleware(),
		recoveryMiddleware(),
	)
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorBody(ErrNotFound))
	})
	s.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorBody(ErrMethodNotAllowed))
	})

	s.engine.Match([]string{http.MethodGet, http.MethodHead, http.MethodPost}, ROUTE_INDEX, s.HandleIndex)

	analyze := []gin.HandlerFunc{s.HandleAnalyze}
	if len(allowedOrigins) > 0 {
		corsMiddleware := cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{"Origin", "Content-Type"},
		})
		analyze = append([]gin.HandlerFunc{corsMiddleware}, analyze...)
		s.engine.OPTIONS(ROUTE_ANALYZE, corsMiddleware)
	}
	s.engine.POST(ROUTE_ANALYZE, analyze...)

	s.engine.GET(ROUTE_HEALTH, s.HandleHealth)
	s.engine.GET(ROUTE_METRICS, gin.WrapH(promhttp.Handler()))
}
