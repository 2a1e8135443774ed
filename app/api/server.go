package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codingthings-com/finfeed/app/cfg"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Routes
	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	// Feed endpoints
	r.GET("/feeds/:source/:topic", handler.GetFeed)
	r.GET("/feed", handler.GetFeedByURL)

	// Source catalog endpoints
	r.GET("/sources", handler.ListSources)
	r.GET("/sources/:source/topics", handler.GetTopics)

	// Export and content extraction endpoints
	r.POST("/export/:source/:topic", handler.ExportFeed)
	r.GET("/extract", handler.ExtractContent)

	// Health endpoint
	r.GET("/health", handler.GetHealth)

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "FinFeed",
			"version":     cfg.GetVersion(),
			"description": "Financial news aggregator with per-source topic catalogs and JSON export",
			"endpoints": map[string]string{
				"feed":        "/feeds/<source>/<topic>",
				"feed_by_url": "/feed?url=<feed url>",
				"sources":     "/sources",
				"topics":      "/sources/<source>/topics",
				"export":      "/export/<source>/<topic> (POST)",
				"extract":     "/extract?url=<page url>",
				"health":      "/health",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
