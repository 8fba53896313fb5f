package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/config"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/reviews"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.LoadConfig("configs/config.yml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if len(cfg.Scraper.Products) == 0 {
		logger.Fatal("No products configured for scraping")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	collector := reviews.NewCollector(cfg.Scraper.BaseURL, logger)
	collected := collector.CollectAll(ctx, cfg.Scraper.Products, cfg.Scraper.MaxPages)

	if len(collected) == 0 {
		fmt.Println("No reviews collected")
		return
	}

	path := storage.ReviewsPath(cfg.Data.Dir)
	if err := storage.WriteReviews(path, collected); err != nil {
		logger.Fatal("Failed to write reviews file", zap.Error(err))
	}

	fmt.Printf("Saved %d reviews to %s\n", len(collected), path)
}
