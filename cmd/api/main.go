package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-prioritizer/config"
	_ "task-prioritizer/docs" // Swagger docs
	"task-prioritizer/internal/httpserver"
	"task-prioritizer/internal/middleware"
	"task-prioritizer/internal/prioritize/usecase"
	"task-prioritizer/pkg/datemath"
	"task-prioritizer/pkg/log"
	"task-prioritizer/pkg/metrics"
)

// @title       Task Prioritizer API
// @description Scores and ranks task lists by urgency, importance, effort and dependency impact.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Prioritizer...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Scoring.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scoring.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	logger.Infof(ctx, "Scoring timezone: %s", dateMathParser.Location())

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Metrics:         metrics.New(),
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		RateLimit: middleware.RateLimitConfig{
			Enabled:        cfg.RateLimit.Enabled,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		},
		DateMath: dateMathParser,
		Scoring: usecase.Config{
			SuggestTopN: cfg.Scoring.SuggestTopN,
			MaxTasks:    cfg.Scoring.MaxTasks,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
