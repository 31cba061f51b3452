package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/foliopulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already
// injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery,
//     ErrorHandler, RateLimiter, CORS).
//   - Adds request timeout handling (60 seconds: one run may resolve
//     many symbols against a rate-limited upstream).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1/portfolio).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are
//     registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
		middleware.CORS(),
	)

	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		p := v1.Group("/portfolio")
		p.POST("/analyze", handler.Analyze)
		p.POST("/export", handler.Export)
		p.POST("/insights", handler.Insights)
		p.GET("/template", handler.Template)
	}

	return router
}
