// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/financehub/server/config"
	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/application/usecase/expense"
	"github.com/financehub/server/internal/application/usecase/graph"
	"github.com/financehub/server/internal/application/usecase/recommendation"
	"github.com/financehub/server/internal/application/usecase/stats"
	synccase "github.com/financehub/server/internal/application/usecase/sync"
	"github.com/financehub/server/internal/application/usecase/tag"
	"github.com/financehub/server/internal/application/usecase/target"
	"github.com/financehub/server/internal/infra/server/router"
	"github.com/financehub/server/internal/integration/cache"
	"github.com/financehub/server/internal/integration/entrypoint/controller"
	"github.com/financehub/server/internal/integration/entrypoint/middleware"
	"github.com/financehub/server/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; recommendations then skip the cache entirely.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	ledgerRepo := persistence.NewLedgerRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	tagRepo := persistence.NewTagRepository(db)
	targetRepo := persistence.NewTargetRepository(db)
	graphRepo := persistence.NewGraphRepository(db)
	statsRepo := persistence.NewStatsRepository(db)

	var recommendationCache adapter.RecommendationCache
	if redisClient != nil {
		recommendationCache = cache.NewRecommendationCache(redisClient, cfg.Recommendation.CacheTTL)
	}

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(ledgerRepo, recommendationCache)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(ledgerRepo, recommendationCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(ledgerRepo, recommendationCache)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo, ledgerRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)

	// Create tag use cases
	listTagsUseCase := tag.NewListTagsUseCase(tagRepo)
	getTagUseCase := tag.NewGetTagUseCase(tagRepo)

	// Create target use cases
	createTargetUseCase := target.NewCreateTargetUseCase(targetRepo, tagRepo)
	updateTargetUseCase := target.NewUpdateTargetUseCase(targetRepo, tagRepo)
	deleteTargetUseCase := target.NewDeleteTargetUseCase(targetRepo)
	listTargetsUseCase := target.NewListTargetsUseCase(targetRepo)

	// Create recommendation and graph use cases
	recommendUseCase := recommendation.NewRecommendUseCase(graphRepo, tagRepo, recommendationCache, recommendation.Params{
		Alpha:        cfg.Recommendation.Alpha,
		Iterations:   cfg.Recommendation.Iterations,
		MaxWalkSteps: cfg.Recommendation.MaxWalkSteps,
		TopK:         cfg.Recommendation.TopK,
	})
	rebuildGraphUseCase := graph.NewRebuildGraphUseCase(ledgerRepo)

	// Create sync use cases
	getDeltaUseCase := synccase.NewGetDeltaUseCase(expenseRepo, tagRepo, targetRepo, graphRepo)
	applyBatchUseCase := synccase.NewApplyBatchUseCase(
		createExpenseUseCase, updateExpenseUseCase, deleteExpenseUseCase,
		createTargetUseCase, updateTargetUseCase, deleteTargetUseCase,
	)

	// Create stats use case
	getSummaryUseCase := stats.NewGetSummaryUseCase(statsRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			return redisClient.Ping(context.Background()).Err() == nil
		},
	)
	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		getExpenseUseCase,
		listExpensesUseCase,
	)
	tagController := controller.NewTagController(listTagsUseCase, getTagUseCase)
	targetController := controller.NewTargetController(createTargetUseCase, listTargetsUseCase)
	recommendationController := controller.NewRecommendationController(recommendUseCase)
	graphController := controller.NewGraphController(rebuildGraphUseCase)
	syncController := controller.NewSyncController(getDeltaUseCase, applyBatchUseCase)
	statsController := controller.NewStatsController(getSummaryUseCase)

	var batchRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		batchRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		batchRateLimiter = middleware.NewRateLimiter()
	}

	r := router.NewRouter(
		healthController,
		expenseController,
		tagController,
		targetController,
		recommendationController,
		graphController,
		syncController,
		statsController,
		batchRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
