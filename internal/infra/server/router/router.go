// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/financehub/server/internal/integration/entrypoint/controller"
	"github.com/financehub/server/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	expenseController        *controller.ExpenseController
	tagController            *controller.TagController
	targetController         *controller.TargetController
	recommendationController *controller.RecommendationController
	graphController          *controller.GraphController
	syncController           *controller.SyncController
	statsController          *controller.StatsController
	batchRateLimiter         *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	tagController *controller.TagController,
	targetController *controller.TargetController,
	recommendationController *controller.RecommendationController,
	graphController *controller.GraphController,
	syncController *controller.SyncController,
	statsController *controller.StatsController,
	batchRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:         healthController,
		expenseController:        expenseController,
		tagController:            tagController,
		targetController:         targetController,
		recommendationController: recommendationController,
		graphController:          graphController,
		syncController:           syncController,
		statsController:          statsController,
		batchRateLimiter:         batchRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		expenses := v1.Group("/expenses")
		{
			expenses.POST("", r.expenseController.Create)
			expenses.GET("", r.expenseController.List)
			expenses.GET("/:id", r.expenseController.Get)
			expenses.PUT("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", r.tagController.List)
			tags.GET("/:id", r.tagController.Get)
			tags.GET("/:id/recommendations", r.recommendationController.Recommend)
		}

		targets := v1.Group("/targets")
		{
			targets.POST("", r.targetController.Create)
			targets.GET("", r.targetController.List)
		}

		graph := v1.Group("/graph")
		{
			graph.POST("/rebuild", r.graphController.Rebuild)
		}

		sync := v1.Group("/sync")
		{
			sync.GET("/delta", r.syncController.GetDelta)
			if r.batchRateLimiter != nil {
				sync.POST("/batch", r.batchRateLimiter.Middleware(), r.syncController.ApplyBatch)
			} else {
				sync.POST("/batch", r.syncController.ApplyBatch)
			}
		}

		stats := v1.Group("/stats")
		{
			stats.GET("/summary", r.statsController.Summary)
		}
	}
}
