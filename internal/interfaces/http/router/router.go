package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stocktrack/backend/internal/interfaces/http/handler"
	"github.com/stocktrack/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"

	"github.com/stocktrack/backend/internal/infrastructure/logger"
)

// Handlers bundles the resource handlers the router mounts
type Handlers struct {
	Category    *handler.CategoryHandler
	Item        *handler.ItemHandler
	Sale        *handler.SaleHandler
	Transaction *handler.TransactionHandler
	Settings    *handler.SettingsHandler
}

// Config holds router configuration
type Config struct {
	CORSAllowOrigins []string
	MaxBodySize      int64
}

// New builds the gin engine with middleware and all API routes mounted
// under /api/v1.
func New(log *zap.Logger, handlers Handlers, cfg Config) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.Secure())

	if cfg.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	categories := api.Group("/categories")
	{
		categories.POST("", handlers.Category.Create)
		categories.GET("", handlers.Category.List)
		categories.GET("/:id", handlers.Category.GetByID)
		categories.PUT("/:id", handlers.Category.Rename)
		categories.DELETE("/:id", handlers.Category.Delete)
	}

	items := api.Group("/items")
	{
		items.POST("", handlers.Item.Create)
		items.GET("", handlers.Item.List)
		items.GET("/summary", handlers.Item.Summary)
		items.GET("/:id", handlers.Item.GetByID)
		items.PATCH("/:id", handlers.Item.Update)
		items.DELETE("/:id", handlers.Item.Delete)
	}

	api.POST("/sales", handlers.Sale.Sell)

	transactions := api.Group("/transactions")
	{
		transactions.GET("", handlers.Transaction.List)
		transactions.GET("/summary", handlers.Transaction.Summary)
		transactions.GET("/export", handlers.Transaction.Export)
		transactions.DELETE("", handlers.Transaction.ClearAll)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", handlers.Settings.Get)
		settings.PUT("", handlers.Settings.Update)
	}

	return engine
}
