package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sofrahq/sofra-api/internal/config"
	domainRepo "github.com/sofrahq/sofra-api/internal/domain/repository"
	"github.com/sofrahq/sofra-api/internal/presentation/http/handler"
	"github.com/sofrahq/sofra-api/internal/presentation/http/middleware"
	"github.com/sofrahq/sofra-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Branch   *handler.BranchHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Discount *handler.DiscountHandler
	Order    *handler.OrderHandler
	Settings *handler.SettingsHandler
	Receipt  *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.BranchScopeMiddleware())

		// Per-branch rate limiter
		rateLimiter := middleware.NewBranchRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)
	protected.POST("/auth/register", middleware.RequireRole("admin", "manager"), h.Auth.Register)

	// Print settings for the caller's own branch
	protected.GET("/settings/print", h.Settings.GetPrintSettings)
	protected.PUT("/settings/print", middleware.RequireRole("admin", "manager"), h.Settings.UpdatePrintSettings)

	registerBranchRoutes(protected, h)
	registerCategoryRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerDiscountRoutes(protected, h)
	registerOrderRoutes(protected, h, deps)
	registerReceiptRoutes(protected, h)
}

func registerBranchRoutes(protected *gin.RouterGroup, h *Handlers) {
	branches := protected.Group("/branches")
	{
		branches.GET("", h.Branch.List)
		branches.GET("/:id", h.Branch.Get)
		branches.GET("/:id/devices", h.Branch.ListDevices)
		branches.GET("/:id/print-settings", h.Settings.GetPrintSettings)

		admin := branches.Group("")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("", h.Branch.Create)
			admin.PUT("/:id", h.Branch.Update)
			admin.DELETE("/:id", h.Branch.Delete)
			admin.POST("/:id/devices", h.Branch.RegisterDevice)
			admin.PUT("/:id/print-settings", h.Settings.UpdatePrintSettings)
		}
	}

	devices := protected.Group("/devices")
	{
		devices.GET("/:deviceId", h.Branch.GetDevice)
		devices.POST("/:deviceId/test-print", h.Receipt.PrintTest)

		admin := devices.Group("")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.PUT("/:deviceId", h.Branch.UpdateDevice)
			admin.DELETE("/:deviceId", h.Branch.DeleteDevice)
		}
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)

		manage := categories.Group("")
		manage.Use(middleware.RequireRole("admin", "manager"))
		{
			manage.POST("", h.Category.Create)
			manage.PUT("/:id", h.Category.Update)
			manage.DELETE("/:id", h.Category.Delete)
		}
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)

		manage := products.Group("")
		manage.Use(middleware.RequireRole("admin", "manager"))
		{
			manage.POST("", h.Product.Create)
			manage.PUT("/:id", h.Product.Update)
			manage.DELETE("/:id", h.Product.Delete)
			manage.POST("/:id/modifiers", h.Product.AddModifier)
			manage.DELETE("/:id/modifiers/:modifierId", h.Product.RemoveModifier)
		}
	}
}

func registerDiscountRoutes(protected *gin.RouterGroup, h *Handlers) {
	discounts := protected.Group("/discounts")
	{
		discounts.GET("", h.Discount.ListDiscounts)
		discounts.GET("/:id", h.Discount.GetDiscount)

		manage := discounts.Group("")
		manage.Use(middleware.RequireRole("admin", "manager"))
		{
			manage.POST("", h.Discount.CreateDiscount)
			manage.PUT("/:id", h.Discount.UpdateDiscount)
			manage.DELETE("/:id", h.Discount.DeleteDiscount)
		}
	}

	promotions := protected.Group("/promotions")
	{
		promotions.GET("", h.Discount.ListPromotions)
		promotions.GET("/:id", h.Discount.GetPromotion)

		manage := promotions.Group("")
		manage.Use(middleware.RequireRole("admin", "manager"))
		{
			manage.POST("", h.Discount.CreatePromotion)
			manage.PUT("/:id", h.Discount.UpdatePromotion)
			manage.DELETE("/:id", h.Discount.DeletePromotion)
		}
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Order.Open)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/close", middleware.Idempotency(deps.IdempotencyRepo), h.Order.Close)
		orders.POST("/:id/void", middleware.RequireRole("admin", "manager"), h.Order.Void)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("/:id/receipt", h.Receipt.Render)
		orders.POST("/:id/print", h.Receipt.Print)
	}
}
