package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/caiolopes/pdv-api/internal/application/service"
	"github.com/caiolopes/pdv-api/internal/config"
	domainRepo "github.com/caiolopes/pdv-api/internal/domain/repository"
	"github.com/caiolopes/pdv-api/internal/infrastructure/backup"
	"github.com/caiolopes/pdv-api/internal/infrastructure/database"
	"github.com/caiolopes/pdv-api/internal/infrastructure/repository"
	"github.com/caiolopes/pdv-api/internal/presentation/http/handler"
	"github.com/caiolopes/pdv-api/internal/presentation/http/routes"
	"github.com/caiolopes/pdv-api/pkg/printer"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	configRepo := repository.NewConfigRepository(db)
	flavorRepo := repository.NewFlavorRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	vipRepo := repository.NewVIPRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Sweep expired idempotency keys so stale rows don't pile up
	go idempotencyCleanupLoop(idempotencyRepo)

	// In-memory carts, one per register session
	carts := service.NewCartStore()

	// CSV backup snapshots of the ledger and VIP registry
	backupWriter := backup.NewCSVWriter(cfg.Storage.Path, saleRepo, vipRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	configService := service.NewConfigService(configRepo, flavorRepo, saleRepo, vipRepo, carts, backupWriter)
	cartService := service.NewCartService(carts, flavorRepo)
	checkoutService := service.NewCheckoutService(carts, configRepo, saleRepo, vipRepo, backupWriter)
	saleService := service.NewSaleService(saleRepo, vipRepo, backupWriter)
	vipService := service.NewVIPService(vipRepo, saleRepo, backupWriter)
	reportService := service.NewReportService(reportRepo, configRepo)
	ticketService := service.NewTicketService(saleRepo, configRepo, thermalPrinter, cfg.Printer.Type, cfg.Stand.Name)

	// Initialize handlers
	handlers := &routes.Handlers{
		Config:   handler.NewConfigHandler(configService),
		Cart:     handler.NewCartHandler(cartService),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Sale:     handler.NewSaleHandler(saleService),
		VIP:      handler.NewVIPHandler(vipService),
		Report:   handler.NewReportHandler(reportService),
		Ticket:   handler.NewTicketHandler(ticketService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// idempotencyCleanupLoop sweeps expired idempotency keys once an hour
func idempotencyCleanupLoop(repo domainRepo.IdempotencyRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := repo.DeleteExpired(context.Background()); err != nil {
			log.Printf("Warning: Failed to delete expired idempotency keys: %v", err)
		}
	}
}
