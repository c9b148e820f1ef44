package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/hopcare/telehealth-platform/internal/api/router"
	"github.com/hopcare/telehealth-platform/internal/appointments"
	appconfig "github.com/hopcare/telehealth-platform/internal/config"
	"github.com/hopcare/telehealth-platform/internal/doctors"
	"github.com/hopcare/telehealth-platform/internal/observability/metrics"
	"github.com/hopcare/telehealth-platform/internal/triage"
	"github.com/hopcare/telehealth-platform/pkg/logging"
)

func main() {
	// .env is optional; real deployments inject environment directly
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting hopcare API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bookingMetrics := metrics.NewBookingMetrics(registry)
	triageMetrics := metrics.NewTriageMetrics(registry)

	// Storage: postgres when DATABASE_URL is set, in-memory otherwise
	var (
		apptRepo   appointments.Repository
		doctorRepo doctors.Repository
	)
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		apptRepo = appointments.NewPostgresRepository(pool)
		doctorRepo = doctors.NewPostgresRepository(pool)
		logger.Info("using postgres storage")
	} else {
		apptRepo = appointments.NewInMemoryRepository()
		memDoctors := doctors.NewInMemoryRepository()
		doctors.SeedInMemory(memDoctors)
		doctorRepo = memDoctors
		logger.Info("using in-memory storage with seeded doctor directory")
	}

	// Symptom check history: redis when configured, in-memory otherwise
	var history triage.HistoryStore
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer func() { _ = rdb.Close() }()
		history = triage.NewRedisHistory(rdb)
		logger.Info("using redis symptom history", "addr", cfg.RedisAddr)
	} else {
		history = triage.NewInMemoryHistory()
	}

	// Services and handlers
	apptService := appointments.NewService(apptRepo, logger.Named("appointments"), bookingMetrics)
	doctorService := doctors.NewService(doctorRepo, logger.Named("doctors"))
	triageService := triage.NewService(history, logger.Named("triage"), triageMetrics)

	if cfg.AuthJWTSecret == "" {
		logger.Warn("AUTH_JWT_SECRET is empty: authenticated routes are disabled")
	}

	r := router.New(&router.Config{
		Logger:              logger,
		AppointmentsHandler: appointments.NewHandler(apptService, logger.Named("appointments")),
		DoctorsHandler:      doctors.NewHandler(doctorService, logger.Named("doctors")),
		TriageHandler:       triage.NewHandler(triageService, logger.Named("triage")),
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		AuthJWTSecret:       cfg.AuthJWTSecret,
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimitPerSec:     cfg.RateLimitPerSecond,
		RateLimitBurst:      cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
