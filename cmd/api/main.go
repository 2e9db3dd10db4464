package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/boxdzair-dotcom/dzair-online/internal/application/service"
	"github.com/boxdzair-dotcom/dzair-online/internal/config"
	"github.com/boxdzair-dotcom/dzair-online/internal/infrastructure/database"
	"github.com/boxdzair-dotcom/dzair-online/internal/infrastructure/repository"
	"github.com/boxdzair-dotcom/dzair-online/internal/presentation/http/handler"
	"github.com/boxdzair-dotcom/dzair-online/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db, cfg.Invoice.Prefix)
	feeRepo := repository.NewFeeRepository(db)

	// Initialize services
	clientService := service.NewClientService(clientRepo)
	productService := service.NewProductService(productRepo)
	saleService := service.NewSaleService(saleRepo, clientRepo, productRepo)
	feeService := service.NewFeeService(feeRepo)
	dashboardService := service.NewDashboardService(saleRepo, feeRepo)
	reportService := service.NewReportService(clientRepo, productRepo, saleRepo, feeRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Client:    handler.NewClientHandler(clientService),
		Product:   handler.NewProductHandler(productService),
		Sale:      handler.NewSaleHandler(saleService),
		Fee:       handler.NewFeeHandler(feeService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
