package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/beautyfacts"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/config"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/models"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/report"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/scan"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/server"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("Starting Cosmetic Safety Scanner API...")

	cfg, err := config.LoadConfig("configs/config.yml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	lookupClient := beautyfacts.NewClient(cfg.ProductAPI.BaseURL, cfg.ProductAPI.UniversalURL, logger)
	reporter := report.NewReporter(cfg.ResultsPath(), models.SampleSummary, logger)

	router := server.NewRouter(server.Deps{
		Products:  lookupClient,
		Summaries: reporter,
		Extractor: scan.StubExtractor{},
		Scorer:    scan.StubScorer{},
	}, logger)

	serverAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server is running", zap.String("address", serverAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
