package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ilmsadmin/zbase-pricing/api/routes"
	"github.com/ilmsadmin/zbase-pricing/internal/catalog"
	"github.com/ilmsadmin/zbase-pricing/internal/customers"
	"github.com/ilmsadmin/zbase-pricing/internal/pricelists"
	"github.com/ilmsadmin/zbase-pricing/pkg/config"
	"github.com/ilmsadmin/zbase-pricing/pkg/db"
	"github.com/ilmsadmin/zbase-pricing/pkg/logger"
	"github.com/ilmsadmin/zbase-pricing/pkg/metrics"
	"github.com/ilmsadmin/zbase-pricing/pkg/migrate"
	"github.com/ilmsadmin/zbase-pricing/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Redis is optional: without it the idempotency middleware passes
	// requests through and readiness skips the cache ping.
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	priceListRepo := pricelists.NewRepository(dbClient.DB())
	customerRepo := customers.NewRepository(dbClient.DB())
	catalogRepo := catalog.NewRepository(dbClient.DB())

	priceListService, err := pricelists.NewService(priceListRepo, customerRepo, customerRepo, catalogRepo, dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create price list service", err)
		os.Exit(1)
	}

	customerService, err := customers.NewService(customerRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create customers service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:           cfg,
			Logger:           logg,
			PriceListService: priceListService,
			CustomerService:  customerService,
			DBPinger:         dbClient,
			RedisClient:      redisClient,
			MetricsRegistry:  registry,
			HTTPMetrics:      httpMetrics,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
