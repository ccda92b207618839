package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/fleet_inventory/docs"
	"github.com/fleet_inventory/internal/config"
	"github.com/fleet_inventory/internal/handlers"
	"github.com/fleet_inventory/internal/middleware"
	"github.com/fleet_inventory/internal/repositories"
	"github.com/fleet_inventory/internal/services"
	"gorm.io/gorm"
)

// SetupRouter builds the gin engine: global middleware, operational
// endpoints and the versioned API groups.
func SetupRouter(gormDB *gorm.DB) *gin.Engine {
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Repositories and services are wired once here and shared by every
	// handler.
	phoneRepo := repositories.NewGormPhoneRepository(gormDB)
	chipRepo := repositories.NewGormChipRepository(gormDB)
	stateRepo := repositories.NewGormChipStateRepository(gormDB)
	assignmentRepo := repositories.NewGormAssignmentRepository(gormDB)
	transferRepo := repositories.NewGormTransferRepository(gormDB)
	userRepo := repositories.NewGormUserRepository(gormDB)

	phoneService := services.NewPhoneService(phoneRepo)
	chipService := services.NewChipService(chipRepo, stateRepo)
	stateService := services.NewChipStateService(stateRepo, chipRepo)
	assignmentService := services.NewAssignmentService(assignmentRepo, phoneRepo)
	transferService := services.NewTransferService(transferRepo, phoneRepo, userRepo)
	reportService := services.NewReportService(phoneRepo, chipRepo, assignmentRepo)

	api := router.Group("/api")
	SetupAuthRoutes(api, handlers.NewAuthHandler(userRepo))
	SetupAssetRoutes(api,
		handlers.NewPhoneHandler(phoneService),
		handlers.NewChipHandler(chipService),
		handlers.NewChipStateHandler(stateService),
		handlers.NewAssignmentHandler(assignmentService),
		handlers.NewTransferHandler(transferService),
		handlers.NewReportHandler(reportService),
	)

	return router
}
