package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/stocktrack/backend/internal/application/catalog"
	ledgerapp "github.com/stocktrack/backend/internal/application/ledger"
	settingsapp "github.com/stocktrack/backend/internal/application/settings"
	"github.com/stocktrack/backend/internal/domain/catalog"
	"github.com/stocktrack/backend/internal/domain/shared"
	"github.com/stocktrack/backend/internal/infrastructure/config"
	"github.com/stocktrack/backend/internal/infrastructure/event"
	"github.com/stocktrack/backend/internal/infrastructure/export"
	"github.com/stocktrack/backend/internal/infrastructure/logger"
	"github.com/stocktrack/backend/internal/infrastructure/persistence"
	"github.com/stocktrack/backend/internal/interfaces/http/handler"
	"github.com/stocktrack/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting StockTrack Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	saleScope := persistence.NewGormTransactionScope(db.DB)

	// Event bus with stock alert logging
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(catalog.EventTypeStockLow, func(ctx context.Context, e shared.DomainEvent) {
		if evt, ok := e.(*catalog.StockLowEvent); ok {
			logger.FromContext(ctx).Warn("Item stock low",
				zap.String("item", evt.Name),
				zap.Int64("quantity", evt.Quantity),
				zap.Int64("threshold", evt.Threshold),
			)
		}
	})
	eventBus.Subscribe(catalog.EventTypeStockDepleted, func(ctx context.Context, e shared.DomainEvent) {
		if evt, ok := e.(*catalog.StockDepletedEvent); ok {
			logger.FromContext(ctx).Warn("Item stock depleted",
				zap.String("item", evt.Name),
			)
		}
	})

	// Application services
	categoryService := catalogapp.NewCategoryService(categoryRepo, itemRepo)
	itemService := catalogapp.NewItemService(itemRepo, categoryRepo, settingsRepo)
	saleService := ledgerapp.NewSaleService(saleScope, settingsRepo)
	ledgerService := ledgerapp.NewLedgerService(transactionRepo, export.NewCSVExporter())
	settingsService := settingsapp.NewSettingsService(settingsRepo)

	categoryService.SetEventPublisher(eventBus)
	itemService.SetEventPublisher(eventBus)
	saleService.SetEventPublisher(eventBus)
	ledgerService.SetEventPublisher(eventBus)

	engine := router.New(log, router.Handlers{
		Category:    handler.NewCategoryHandler(categoryService),
		Item:        handler.NewItemHandler(itemService),
		Sale:        handler.NewSaleHandler(saleService),
		Transaction: handler.NewTransactionHandler(ledgerService),
		Settings:    handler.NewSettingsHandler(settingsService),
	}, router.Config{
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
		MaxBodySize:      cfg.HTTP.MaxBodySize,
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
