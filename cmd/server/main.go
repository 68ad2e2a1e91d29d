package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-signals/internal/api"
	"github.com/Kamar-Folarin/github-signals/internal/batch"
	"github.com/Kamar-Folarin/github-signals/internal/config"
	"github.com/Kamar-Folarin/github-signals/internal/github"
	"github.com/Kamar-Folarin/github-signals/internal/metrics"
	"github.com/Kamar-Folarin/github-signals/internal/signals"
)

// @title GitHub Signals API
// @version 1.0
// @description Recruiter-facing signals derived from a user's public GitHub activity
// @contact.name API Support
// @contact.url http://github.com/Kamar-Folarin
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration with defaults
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
	}

	if cfg.GitHub.Token == "" {
		logger.Warn("GITHUB_TOKEN not set, requests are unauthenticated and heavily rate limited")
	}

	// Initialize services
	metricsManager := metrics.NewManager()
	client := github.NewClient(cfg.GitHub, logger, github.WithObserver(metricsManager))
	services := signals.NewServices(signals.Deps{
		Fetcher:   client,
		Logger:    logger,
		Processor: batch.NewProcessor(cfg.Batch),
		Recorder:  metricsManager,
	})

	// Setup router with middleware
	gin.SetMode(gin.ReleaseMode)
	router := api.SetupRouter(api.NewHandlerFromServices(services, logger), logger, api.RouterOptions{
		Observer: metricsManager,
		Metrics:  metricsManager.Handler(),
	})
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(router)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}
