package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Veraticus/moodring/internal/metrics"
	"github.com/Veraticus/moodring/internal/service"
)

// Dependencies are the collaborators the routes are wired to.
type Dependencies struct {
	Classifier  service.Classifier
	Storage     service.Storage
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
	RateLimiter *RateLimiter
}

// NewRouter creates a gin engine with all routes registered.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	SetupRoutes(router, deps)
	return router
}

// SetupRoutes registers the health, metrics and API routes on router.
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	if deps.HTTPMetrics != nil {
		router.Use(instrument(deps.HTTPMetrics))
	}

	router.GET("/health", HealthCheck)
	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Registry)))
	}

	api := router.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}
	{
		api.POST("/analyze", Analyze(deps.Classifier, deps.Storage))

		history := api.Group("/history")
		{
			history.GET("", ListHistory(deps.Storage))
			history.GET("/:id", GetHistory(deps.Storage))
			history.DELETE("/:id", DeleteHistory(deps.Storage))
		}
	}
}

func instrument(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.Duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
