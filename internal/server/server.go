// Package server assembles the HTTP router.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"budgetplan/internal/config"
	_ "budgetplan/internal/docs" // Import swagger docs
	"budgetplan/internal/handlers"
	"budgetplan/internal/middleware"
	"budgetplan/internal/repository"
	"budgetplan/internal/services"
)

// Dependencies are the collaborators the router is built from.
type Dependencies struct {
	Config *config.Config
	DB     *gorm.DB
	Rates  services.RateSource
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	// Repositories
	budgetRepo := repository.NewBudgetRepository(deps.DB)
	wageRepo := repository.NewWageRepository(deps.DB)

	// Services
	userService := services.NewUserService(deps.DB)
	auditService := services.NewAuditService(deps.DB)
	configurationService := services.NewBudgetConfigurationService(budgetRepo)
	distributor := services.NewAllocationDistributor(budgetRepo)
	wageService := services.NewWageService(wageRepo, deps.Rates, distributor)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	configurationHandler := handlers.NewBudgetConfigurationHandler(configurationService, auditService)
	wageHandler := handlers.NewWageHandler(wageService, auditService)

	router := gin.New()
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(deps.Config.CORSAllowedOrigins)))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/users", userHandler.CreateUser)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.Config.JWTSecret))

	protected.GET("/profile", userHandler.GetProfile)

	configurations := protected.Group("/budget-configurations")
	configurations.POST("", configurationHandler.CreateConfiguration)
	configurations.GET("", configurationHandler.GetConfigurations)
	configurations.GET("/:id", configurationHandler.GetConfiguration)
	configurations.PATCH("/:id", configurationHandler.UpdateConfiguration)
	configurations.DELETE("/:id", configurationHandler.DeleteConfiguration)
	configurations.POST("/:id/activate", configurationHandler.ActivateConfiguration)

	wages := protected.Group("/wages")
	wages.POST("", wageHandler.RecordWage)
	wages.GET("", wageHandler.GetWages)
	wages.GET("/summaries", wageHandler.GetMonthlySummaries)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
