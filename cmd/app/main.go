package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/kafka/orderevents"
	"fulfillment/internal/adapters/out/redis/revenuerollup"
	"fulfillment/internal/pkg/logger"
	"fulfillment/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("loading time zone: %w", err)
	}

	db, err := cmd.OpenDatabase(cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()
	log.Info(ctx, "database ready ("+cfg.DB.Driver+")")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := cmd.Dependencies{
		Metrics:  metrics.New(registry),
		Logger:   log,
		Location: loc,
	}

	if cfg.Redis.URL != "" {
		client, redisErr := revenuerollup.NewClient(ctx, revenuerollup.ClientConfig{
			URL:          cfg.Redis.URL,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if redisErr != nil {
			return redisErr
		}
		defer func() { _ = client.Close() }()

		rollup, rollupErr := revenuerollup.New(client, cfg.Redis.RollupTTL)
		if rollupErr != nil {
			return rollupErr
		}
		deps.Rollup = rollup
		log.Info(ctx, "revenue rollup enabled")
	}

	if cfg.Kafka.Brokers != "" {
		writer := orderevents.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() { _ = writer.Close() }()

		publisher, publisherErr := orderevents.NewPublisher(writer)
		if publisherErr != nil {
			return publisherErr
		}
		deps.Publisher = publisher
		log.Info(ctx, "order events publishing to "+cfg.Kafka.Topic)
	}

	app := cmd.NewCompositionRoot(cfg, db, deps)

	if cfg.Jobs.Enabled {
		jobManager := app.CreateJobManager()
		if err = jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()
	}

	return serve(ctx, app, cfg.HTTP, registry, log)
}

func serve(ctx context.Context, app cmd.CompositionRoot, cfg cmd.HTTPConfig, registry *prometheus.Registry, log *logger.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(httpadapter.RequestLogger(log))

	app.CreateHTTPServer().RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "http server listening on :"+cfg.Port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	log.Info(shutdownCtx, "shutting down")
	return e.Shutdown(shutdownCtx)
}
