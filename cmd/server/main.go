// Package main provides the course planner API server entry point.
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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/bucourseplanner/backend-go/internal/api"
	"github.com/bucourseplanner/backend-go/internal/buildinfo"
	"github.com/bucourseplanner/backend-go/internal/catalog"
	"github.com/bucourseplanner/backend-go/internal/config"
	"github.com/bucourseplanner/backend-go/internal/genai"
	"github.com/bucourseplanner/backend-go/internal/logger"
	"github.com/bucourseplanner/backend-go/internal/metrics"
	"github.com/bucourseplanner/backend-go/internal/openalex"
	"github.com/bucourseplanner/backend-go/internal/professors"
	"github.com/bucourseplanner/backend-go/internal/ratelimit"
	"github.com/bucourseplanner/backend-go/internal/sentry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger with optional Better Stack shipping
	log := logger.NewWithShipping(cfg.LogLevel, logger.ShippingOptions{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log.WithField("version", buildinfo.Version).Info("Starting Course Planner API Server")

	// Initialize error tracking (no-op without a token)
	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Version,
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize error tracking")
	} else if sentry.IsEnabled() {
		log.Info("Error tracking initialized")
	}

	// Create Prometheus registry
	registry := prometheus.NewRegistry()

	// Register Go and process collectors
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	// Create metrics
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Course dataset loader (re-reads per request, no cache)
	courses := catalog.NewLoader(cfg.DataDir, log)
	courses.SetMetrics(m)
	log.WithField("data_dir", cfg.DataDir).
		WithField("courses", len(courses.Load())).
		Info("Course dataset loader created")

	// Professor directory
	directory := professors.NewDirectory(cfg.DataDir, log)
	log.WithField("professors", len(directory.All())).Info("Professor directory created")

	// OpenAlex client for research data
	openalexClient := openalex.NewClient(openalex.Options{
		BaseURL: cfg.OpenAlexBaseURL,
		Timeout: cfg.OpenAlexTimeout,
		Mailto:  cfg.OpenAlexMailto,
		Metrics: m,
	}, log)
	log.Info("OpenAlex client created")

	// LLM generator with provider fallback (disabled without API keys)
	generator, err := genai.New(context.Background(), genai.Config{
		Primary:  genai.Provider(cfg.LLMPrimaryProvider),
		Fallback: genai.Provider(cfg.LLMFallbackProvider),
		Gemini: genai.ProviderConfig{
			APIKey: cfg.GoogleAPIKey,
			Models: cfg.GeminiModels,
		},
		Groq: genai.ProviderConfig{
			APIKey: cfg.GroqAPIKey,
			Models: cfg.GroqModels,
		},
	}, m)
	if err != nil {
		log.WithError(err).Fatal("Failed to create LLM generator")
	}
	if generator.IsEnabled() {
		log.WithField("provider", generator.Provider().String()).Info("LLM generator created")
	} else {
		log.Warn("No LLM API key configured, AI endpoints degrade to fallbacks")
	}

	// Per-client rate limiter for AI endpoints
	aiLimiter := ratelimit.NewKeyedLimiter(ratelimit.KeyedConfig{
		Name:       "ai",
		Burst:      cfg.AIRateLimitBurst,
		RefillRate: cfg.AIRateLimitRefillPerSec,
		DailyLimit: cfg.AIRateLimitDaily,
		Metrics:    m,
	})
	log.Info("AI rate limiter created")

	// HTTP handlers
	handler := api.NewHandler(api.Options{
		Courses:    courses,
		Professors: directory,
		OpenAlex:   openalexClient,
		Generator:  generator,
		AILimiter:  aiLimiter,
		Metrics:    m,
		Logger:     log,
	})

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(corsMiddleware(cfg))
	router.Use(loggingMiddleware(log, m))
	if sentry.IsEnabled() {
		router.Use(sentryMiddleware())
	}

	// Setup routes
	setupRoutes(router, handler, courses, directory, registry, cfg)

	// Create HTTP server. Write timeout must cover the slowest AI call,
	// see internal/config/timeouts.go.
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.HTTPRead,
		WriteTimeout: config.HTTPWrite,
		IdleTimeout:  config.HTTPIdle,
	}

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Stop the rate limiter cleanup goroutine
	aiLimiter.Stop()

	// Close LLM provider clients
	if err := generator.Close(); err != nil {
		log.WithError(err).Error("Failed to close LLM generator")
	}

	// Flush buffered error events
	sentry.Flush(2 * time.Second)

	log.Info("Server stopped")
}
