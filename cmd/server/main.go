package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	assistantapp "github.com/elir12131/agroflow/internal/application/assistant"
	catalogapp "github.com/elir12131/agroflow/internal/application/catalog"
	orderingapp "github.com/elir12131/agroflow/internal/application/ordering"
	partnerapp "github.com/elir12131/agroflow/internal/application/partner"
	reportapp "github.com/elir12131/agroflow/internal/application/report"
	settingsapp "github.com/elir12131/agroflow/internal/application/settings"
	"github.com/elir12131/agroflow/internal/infrastructure/cache"
	"github.com/elir12131/agroflow/internal/infrastructure/config"
	"github.com/elir12131/agroflow/internal/infrastructure/logger"
	"github.com/elir12131/agroflow/internal/infrastructure/persistence"
	"github.com/elir12131/agroflow/internal/infrastructure/telemetry"
	"github.com/elir12131/agroflow/internal/interfaces/http/handler"
	"github.com/elir12131/agroflow/internal/interfaces/http/middleware"
	"github.com/elir12131/agroflow/internal/interfaces/http/router"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	if cfg.Telemetry.Enabled {
		tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
			Enabled:           cfg.Telemetry.Enabled,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			SamplingRatio:     cfg.Telemetry.SamplingRatio,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				log.Error("Failed to shut down tracer provider", zap.Error(err))
			}
		}()

		if cfg.Telemetry.DBTraceEnabled {
			if err := db.EnableTracing(); err != nil {
				log.Fatal("Failed to enable database tracing", zap.Error(err))
			}
		}
	}

	reportCache := buildReportCache(cfg, log)
	defer func() {
		if err := reportCache.Close(); err != nil {
			log.Error("Failed to close report cache", zap.Error(err))
		}
	}()

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	salesRepo := persistence.NewGormSalesReportRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)

	// Application services
	customerService := partnerapp.NewCustomerService(customerRepo, orderRepo)
	productService := catalogapp.NewProductService(productRepo)
	cartService := orderingapp.NewCartService(customerRepo, productRepo, orderRepo)
	orderService := orderingapp.NewOrderService(orderRepo, customerRepo, reportCache, log)
	reportService := reportapp.NewReportService(salesRepo, customerRepo, reportCache, cfg.Cache.ReportTTL, log)
	assistantService := assistantapp.NewAssistantService(reportService, settingRepo, log)
	settingsService := settingsapp.NewSettingsService(settingRepo)

	engine := buildEngine(cfg, log)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(db)).
		Register(handler.NewCustomerHandler(customerService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewReportHandler(reportService)).
		Register(handler.NewAssistantHandler(assistantService)).
		Register(handler.NewSettingsHandler(settingsService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// buildReportCache picks the cache backend. With caching disabled the
// services still get an in-memory store so report reads stay cheap
// within a single process.
func buildReportCache(cfg *config.Config, log *zap.Logger) cache.ReportCache {
	if !cfg.Cache.Enabled {
		log.Info("Report caching via Redis disabled, using in-memory store")
		return cache.NewInMemoryReportCache()
	}

	factory := cache.NewReportCacheFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(cfg.App.Env != "production"),
	)
	store, err := factory.CreateStore()
	if err != nil {
		log.Fatal("Failed to create report cache", zap.Error(err))
	}
	return store
}

func buildEngine(cfg *config.Config, log *zap.Logger) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		gin.Recovery(),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		middleware.Tracing(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		}),
		middleware.SpanErrorMarker(),
	)

	return engine
}
