package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.Use(CORS(), RequestID())

	// Health check endpoint
	router.GET("/health", h.HandleHealth)

	// Service information endpoint
	router.GET("/info", h.HandleInfo)
	router.GET("/", h.HandleInfo) // Root endpoint shows info

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/compress", h.HandleCompress)
		v1.POST("/decompress", h.HandleDecompress)
		v1.POST("/inspect", h.HandleInspect)
		v1.GET("/info", h.HandleInfo)
		v1.GET("/health", h.HandleHealth)
	}

	// Legacy routes for backward compatibility
	router.POST("/compress", h.HandleCompress)
	router.POST("/decompress", h.HandleDecompress)
}
