// Package handlers wires the HTTP surface: route registration, request
// binding and error-to-status mapping. All business behavior lives in the
// service layer.
package handlers

import (
	portssvc "github.com/Max-Ceph/zaman-hacknu/internal/core/ports/services"
	"github.com/Max-Ceph/zaman-hacknu/internal/middleware"
	"github.com/Max-Ceph/zaman-hacknu/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
	chatLimiter *limiter.Limiter,
) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	registerHomeRoutes(r)

	registerAuthRoutes(r, cfg, services.User, loginLimiter)

	setupAPIV1Routes(r, cfg, services, chatLimiter)
}

// setupAPIV1Routes configures the session-protected /api/v1 group and
// delegates to per-entity registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	chatLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.SessionAuthMiddleware(cfg.SessionCookieName, cfg.JWTSecret))

	registerAccountRoutes(v1, services.Account)
	registerGoalRoutes(v1, services.Goal)
	registerTransactionRoutes(v1, services.Transaction)
	registerAnalyticsRoutes(v1, services.Analytics, services.Goal)
	registerChatRoutes(v1, services.Chat, chatLimiter)
	registerTranscribeRoutes(v1, services.Transcriber)
}
