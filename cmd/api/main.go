package main

import (
	"context"
	"crypto/tls"
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

	"github.com/lendora/loanflow/internal/api/router"
	appconfig "github.com/lendora/loanflow/internal/config"
	"github.com/lendora/loanflow/internal/engine"
	"github.com/lendora/loanflow/internal/http/handlers"
	"github.com/lendora/loanflow/internal/leads"
	"github.com/lendora/loanflow/internal/learning"
	"github.com/lendora/loanflow/internal/observability/metrics"
	"github.com/lendora/loanflow/internal/session"
	"github.com/lendora/loanflow/pkg/logging"
)

func main() {
	// A missing .env file is fine; real deployments use the environment.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := newLogger(cfg)
	logger.Info("starting loanflow API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	metricsHandler, engineMetrics := setupEngineMetrics()

	// Redis backs both session state and the learning side channel.
	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() { _ = redisClient.Close() }()

	ctx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable at startup, sessions will degrade", "error", err)
	}
	pingCancel()

	sessionStore := session.NewRedisStore(redisClient, cfg.SessionTTL)

	learningStore := learning.NewRedisStore(redisClient, cfg.LearningTTL)
	recorder := learning.NewRecorder(learningStore, cfg.LearningBuffer, cfg.LearningWorkers, logger)
	recorder.SetDropHook(engineMetrics.ObserveLearningDrop)
	defer recorder.Close()

	// Lead persistence: Postgres when configured, in-memory otherwise.
	var leadsRepo leads.Repository = leads.NewInMemoryRepository()
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create pgx pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		leadsRepo = leads.NewPostgresRepository(pool)
		logger.Info("lead persistence enabled", "backend", "postgres")
	} else {
		logger.Warn("DATABASE_URL not set, leads are held in memory only")
	}

	eng := engine.New(engine.Deps{
		Sessions: sessionStore,
		Learning: recorder,
		Logger:   logger,
		Metrics:  engineMetrics,
		Seed:     cfg.ResponseSeed,
		Source:   cfg.LeadSource,
	})

	chatHandler := handlers.NewChatHandler(eng, leadsRepo, logger)
	leadsHandler := leads.NewHandler(leadsRepo, logger)

	routerCfg := &router.Config{
		Logger:             logger,
		ChatHandler:        chatHandler,
		LeadsHandler:       leadsHandler,
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ChatRatePerSecond:  5,
		ChatBurst:          10,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// newLogger picks the handler format by environment: human-readable text
// locally, JSON for aggregation everywhere else.
func newLogger(cfg *appconfig.Config) *logging.Logger {
	if cfg.Env == "development" {
		return logging.NewText(cfg.LogLevel)
	}
	return logging.New(cfg.LogLevel)
}

// setupEngineMetrics builds an isolated registry with process/go collectors
// plus the engine metrics, and the handler that serves it.
func setupEngineMetrics() (http.Handler, *metrics.EngineMetrics) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	engineMetrics := metrics.NewEngineMetrics(registry)
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), engineMetrics
}
