package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/tillpoint-api/internal/config"
	"github.com/sangkips/tillpoint-api/internal/presentation/http/handler"
	"github.com/sangkips/tillpoint-api/internal/presentation/http/middleware"
	"github.com/sangkips/tillpoint-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Sale      *handler.SaleHandler
	Catalog   *handler.CatalogHandler
	Printer   *handler.PrinterHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(
		deps.Cfg.RateLimit.RequestsPerSecond,
		deps.Cfg.RateLimit.BurstSize,
	)
	router.Use(rateLimiter.Middleware())

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
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		registerCatalogRoutes(protected, h)
		registerSaleRoutes(protected, h)
		registerPrinterRoutes(protected, h)
		registerDashboardRoutes(protected, h)
	}

	return router
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	items := protected.Group("/items")
	{
		items.GET("", h.Catalog.List)
		items.GET("/:id", h.Catalog.Get)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.POST("", h.Sale.Start)
		sales.GET("/current", h.Sale.Current)
		sales.GET("/current/vat", h.Sale.CurrentVAT)
		sales.POST("/current/items", h.Sale.EnterItem)
		sales.POST("/current/end", h.Sale.End)
		sales.POST("/current/discount", h.Sale.Discount)
		sales.POST("/current/payment", h.Sale.Pay)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printers := protected.Group("/printer")
	{
		printers.GET("/status", h.Printer.Status)
		printers.POST("/test", h.Printer.Test)
	}
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/dashboard/stats", h.Dashboard.Stats)
}
