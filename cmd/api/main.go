package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sofrahq/sofra-api/internal/application/service"
	"github.com/sofrahq/sofra-api/internal/config"
	"github.com/sofrahq/sofra-api/internal/infrastructure/database"
	"github.com/sofrahq/sofra-api/internal/infrastructure/repository"
	"github.com/sofrahq/sofra-api/internal/presentation/http/handler"
	"github.com/sofrahq/sofra-api/internal/presentation/http/routes"
	"github.com/sofrahq/sofra-api/pkg/oauth"
	"github.com/sofrahq/sofra-api/pkg/utils"
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

	// Seed default branch and admin account
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	modifierRepo := repository.NewModifierOptionRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	printSettingsRepo := repository.NewPrintSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleService(oauth.Config{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
		SuccessURL:   cfg.OAuth.FrontendSuccessURL,
		ErrorURL:     cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	branchService := service.NewBranchService(branchRepo, deviceRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, modifierRepo, categoryRepo)
	discountService := service.NewDiscountService(discountRepo, promotionRepo)
	orderService := service.NewOrderService(
		orderRepo,
		orderItemRepo,
		productRepo,
		discountRepo,
		promotionRepo,
		branchRepo,
		cfg.Tax,
	)
	settingsService := service.NewSettingsService(printSettingsRepo, branchRepo)
	receiptService := service.NewReceiptService(orderRepo, deviceRepo, settingsService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Branch:   handler.NewBranchHandler(branchService),
		Category: handler.NewCategoryHandler(categoryService),
		Product:  handler.NewProductHandler(productService),
		Discount: handler.NewDiscountHandler(discountService),
		Order:    handler.NewOrderHandler(orderService),
		Settings: handler.NewSettingsHandler(settingsService),
		Receipt:  handler.NewReceiptHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
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
