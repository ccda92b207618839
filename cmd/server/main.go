package main

import (
	"go.uber.org/zap"

	"github.com/fleet_inventory/internal/config"
	"github.com/fleet_inventory/internal/logger"
	"github.com/fleet_inventory/internal/routes"
	"github.com/fleet_inventory/pkg/db"
)

// @title Fleet Inventory API
// @version 1.0
// @description Asset lifecycle and assignment service for the messaging fleet: phones, chips, time-boxed assignments and the chip state ledger.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if err := logger.Init(config.AppConfig.Environment); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db.InitDB()
	defer db.CloseDB()

	router := routes.SetupRouter(db.GetDB())

	port := config.AppConfig.ServerPort
	logger.Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}
