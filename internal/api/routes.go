package api

import (
	"github.com/gin-gonic/gin"

	"github.com/eric-promptshop/Trypto-Travel-App-sub004/internal/telemetry"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, tel *telemetry.Provider) {
	router.GET("/healthz", handler.HealthCheck)
	if tel != nil {
		router.GET("/metrics", gin.WrapH(tel.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		normalize := v1.Group("/normalize")
		{
			normalize.POST("", handler.Normalize)            // POST /api/v1/normalize
			normalize.POST("/batch", handler.NormalizeBatch) // POST /api/v1/normalize/batch
		}

		v1.POST("/tag", handler.Tag)    // POST /api/v1/tag
		v1.GET("/stats", handler.Stats) // GET /api/v1/stats

		dedup := v1.Group("/dedup")
		{
			dedup.DELETE("/:id", handler.RemoveDedupEntry) // DELETE /api/v1/dedup/:id
			dedup.DELETE("", handler.ClearDedupIndex)      // DELETE /api/v1/dedup
		}
	}
}
