package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brownkp/europatch/internal/api/handlers"
	apimiddleware "github.com/brownkp/europatch/internal/api/middleware"
	"github.com/brownkp/europatch/internal/config"
	"github.com/brownkp/europatch/internal/metrics"
)

func SetupRouter(db *gorm.DB, cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	// One CloudWatch client for the middleware and all handlers; it is a
	// no-op outside production.
	cloudwatch, _ := metrics.NewClient(context.Background(), cfg.Environment)

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cloudwatch))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	healthHandler := handlers.NewHealthHandler(db, version)
	modulesHandler := handlers.NewModulesHandler(db)
	racksHandler := handlers.NewRacksHandler(db, cloudwatch)
	patchesHandler := handlers.NewPatchesHandler(db, cloudwatch)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.HealthCheck)

		// Module library
		api.GET("/modules", modulesHandler.List)
		api.GET("/modules/:id", modulesHandler.Get)
		api.GET("/modules/:id/manual", modulesHandler.Manual)
		api.GET("/modules/:id/forum-data", modulesHandler.ForumData)

		// ModularGrid racks
		api.POST("/parse-rack", racksHandler.ParseRack)
		api.GET("/racks", racksHandler.List)
		api.GET("/racks/:id", racksHandler.Get)

		// Patch generation
		api.POST("/generate-patch", patchesHandler.Generate)
		api.GET("/patch-ideas", patchesHandler.List)
		api.GET("/patch-ideas/:id", patchesHandler.Get)
	}

	return router
}
