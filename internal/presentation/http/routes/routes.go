package routes

import (
	"time"

	"github.com/caiolopes/pdv-api/internal/config"
	domainRepo "github.com/caiolopes/pdv-api/internal/domain/repository"
	"github.com/caiolopes/pdv-api/internal/presentation/http/handler"
	"github.com/caiolopes/pdv-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Config   *handler.ConfigHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Sale     *handler.SaleHandler
	VIP      *handler.VIPHandler
	Report   *handler.ReportHandler
	Ticket   *handler.TicketHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
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
	router.Use(middleware.RegisterSession())

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
		// Per-register rate limiter
		rateLimiter := middleware.NewRegisterRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerConfigRoutes(v1, h)
		registerCartRoutes(v1, h)
		registerSaleRoutes(v1, h, deps)
		registerVIPRoutes(v1, h, deps)
		registerReportRoutes(v1, h)
		registerTicketRoutes(v1, h)
	}

	return router
}

func registerConfigRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/config", h.Config.Get)
	v1.PUT("/config", h.Config.Configure)
	v1.POST("/reset", h.Config.Reset)
	v1.GET("/catalog", h.Config.Catalog)
}

func registerCartRoutes(v1 *gin.RouterGroup, h *Handlers) {
	cart := v1.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.DELETE("/items/:flavor", h.Cart.RemoveItem)
		cart.PUT("/discount", h.Cart.ApplyDiscount)
		cart.DELETE("", h.Cart.Clear)
	}
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Checkout uses idempotency middleware so network retries never ring twice
	v1.POST("/checkout", middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	}), h.Checkout.Finalize)

	sales := v1.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.GET("/:id", h.Sale.Get)
		sales.DELETE("/:id", h.Sale.Reverse)
	}
}

func registerVIPRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	vips := v1.Group("/vips")
	{
		vips.GET("", h.VIP.List)
		vips.POST("/:name/settle", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.VIP.Settle)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/flavors", h.Report.ByFlavor)
		reports.GET("/hours", h.Report.ByHour)
	}
}

func registerTicketRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sales := v1.Group("/sales")
	{
		sales.GET("/:id/tickets", h.Ticket.List)
		sales.GET("/:id/tickets/:seq", h.Ticket.Render)
		sales.POST("/:id/print", h.Ticket.Print)
	}

	v1.GET("/printer/status", h.Ticket.PrinterStatus)
}
