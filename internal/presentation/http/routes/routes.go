package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boxdzair-dotcom/dzair-online/internal/config"
	"github.com/boxdzair-dotcom/dzair-online/internal/presentation/http/handler"
	"github.com/boxdzair-dotcom/dzair-online/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Client    *handler.ClientHandler
	Product   *handler.ProductHandler
	Sale      *handler.SaleHandler
	Fee       *handler.FeeHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerClientRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerSaleRoutes(v1, h)
		registerFeeRoutes(v1, h)

		v1.GET("/dashboard", h.Dashboard.Stats)

		registerReportRoutes(v1, h)
	}

	return router
}

func registerClientRoutes(v1 *gin.RouterGroup, h *Handlers) {
	clients := v1.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
	}
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sales := v1.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.GET("/:id/invoice.pdf", h.Sale.InvoicePDF)
	}
}

func registerFeeRoutes(v1 *gin.RouterGroup, h *Handlers) {
	fees := v1.Group("/fees")
	{
		fees.GET("", h.Fee.List)
		fees.POST("", h.Fee.Create)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/export", h.Report.FullExport)
		reports.GET("/sales", h.Report.SalesExport)
	}
}
