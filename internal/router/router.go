// Package router assembles the HTTP routes of the analyzer API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "reanalyzer/internal/docs" // Register swagger docs
	"reanalyzer/internal/handlers"
	"reanalyzer/internal/middleware"
	"reanalyzer/internal/services"
)

// Options holds the dependencies of the router.
type Options struct {
	DB       *gorm.DB
	Analysis services.AnalysisServicer
	Limiter  *middleware.RateLimiter
	APIKey   string
}

// New builds the Gin engine serving the analyzer API.
func New(opts Options) *gin.Engine {
	scenarioService := services.NewScenarioService(opts.DB, opts.Analysis)
	auditService := services.NewAuditService(opts.DB)

	evaluationHandler := handlers.NewEvaluationHandler(opts.Analysis)
	scenarioHandler := handlers.NewScenarioHandler(scenarioService, auditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")
	if opts.Limiter != nil {
		v1.Use(middleware.RateLimit(opts.Limiter))
	}

	v1.GET("/policy", evaluationHandler.Policy)
	v1.POST("/evaluations", evaluationHandler.Evaluate)

	scenarios := v1.Group("/scenarios")
	scenarios.Use(middleware.APIKey(opts.APIKey))
	scenarios.POST("", scenarioHandler.CreateScenario)
	scenarios.GET("", scenarioHandler.ListScenarios)
	scenarios.GET("/:id", scenarioHandler.GetScenario)
	scenarios.PUT("/:id", scenarioHandler.UpdateScenario)
	scenarios.DELETE("/:id", scenarioHandler.DeleteScenario)
	scenarios.POST("/:id/evaluate", scenarioHandler.EvaluateScenario)

	return router
}
