// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "salon_backend/internal/feature/auth/transport/handler"
	bookinghandler "salon_backend/internal/feature/booking/transport/handler"
	"salon_backend/internal/platform/http/handler"
	jwtmw "salon_backend/internal/platform/jwt"
	"salon_backend/internal/shared/ratelimiter"
)

// NewRouter builds the Gin engine with all routes registered.
//
// Listing and point lookups are unauthenticated; every mutating service
// endpoint requires a Bearer token. Register/login are rate limited per
// client IP.
func NewRouter(authHandler *authhandler.AuthHandler, serviceHandler *bookinghandler.ServiceHandler,
	verifier jwtmw.Verifier, limiter *ratelimiter.RateLimiter) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Credential endpoints, rate limited
	auth := r.Group("/auth")
	auth.Use(ratelimiter.Middleware(limiter))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Public reads
	r.GET("/services", serviceHandler.List)
	r.GET("/services/:id", serviceHandler.GetByID)

	// Mutations require a valid Bearer token
	protected := r.Group("/services")
	protected.Use(jwtmw.AuthRequired(verifier))
	{
		protected.POST("", serviceHandler.Create)
		protected.PUT("/:id", serviceHandler.Update)
		protected.DELETE("/:id", serviceHandler.Delete)
	}

	return r
}
