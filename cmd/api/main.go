package main

import (
	"fmt"
	"os"

	"budgetplan/internal/config"
	"budgetplan/internal/database"
	"budgetplan/internal/exchange"
	"budgetplan/internal/logger"
	"budgetplan/internal/server"
	"budgetplan/internal/validator"
)

// @title           Budget Plan API
// @version         1.0
// @description     Budget Plan splits every wage a user posts across the budgets of their active configuration.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	router := server.NewRouter(server.Dependencies{
		Config: appConfig,
		DB:     dbManager.DB(),
		Rates:  exchange.NewFetcherFromConfig(appConfig),
	})

	log.Infof("Starting Budget Plan server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
