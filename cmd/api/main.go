package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reanalyzer/internal/cache"
	"reanalyzer/internal/config"
	"reanalyzer/internal/database"
	"reanalyzer/internal/logger"
	"reanalyzer/internal/middleware"
	"reanalyzer/internal/router"
	"reanalyzer/internal/services"
	"reanalyzer/internal/validator"
)

// @title           Real-Estate Analyzer API
// @version         1.0
// @description     Evaluates property purchases: capital structure, loan amortization, DCF, NPV, IRR, DSCR and ROIC.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared secret guarding scenario routes when API_KEY is set.

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	policy, err := config.LoadPolicy(appConfig.PolicyFile)
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}
	log.Infow("Evaluation policy loaded",
		"convention", policy.Convention,
		"agent_fee_rate", policy.AgentFeeRate,
		"projection_years", policy.ProjectionYears,
	)

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	resultCache, closeCache, err := newCache(appConfig)
	if err != nil {
		return err
	}
	defer closeCache()

	analysisService, err := services.NewAnalysisService(policy, resultCache, appConfig.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to create analysis service: %w", err)
	}

	limiter := middleware.NewRateLimiter(appConfig.RateLimitRPS, appConfig.RateLimitBurst)
	defer limiter.Stop()

	validator.Register()
	handler := router.New(router.Options{
		DB:       dbManager.DB(),
		Analysis: analysisService,
		Limiter:  limiter,
		APIKey:   appConfig.APIKey,
	})
	if appConfig.APIKey == "" {
		log.Warn("API_KEY is not set; scenario routes are unauthenticated")
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting analyzer server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// newCache returns Redis when REDIS_ADDR is set and an in-process cache otherwise.
func newCache(cfg *config.Config) (cache.Cache, func(), error) {
	log := logger.Named("cache")

	if cfg.RedisAddr == "" {
		log.Infow("REDIS_ADDR not set; using in-memory result cache", "size", cfg.CacheSize)
		return cache.NewMemory(cache.MemoryOptions{Size: cfg.CacheSize, TTL: cfg.CacheTTL}), func() {}, nil
	}

	rc := cache.NewRedis(cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		_ = rc.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	log.Infow("Using redis result cache", "addr", cfg.RedisAddr)

	return rc, func() {
		if err := rc.Close(); err != nil {
			log.Warnf("redis close error: %v", err)
		}
	}, nil
}
