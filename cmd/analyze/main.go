package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/aggregate"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/config"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/models"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/sentiment"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/storage"
)

const topIssueCount = 3

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

	path, err := storage.LatestReviewFile(cfg.Data.Dir)
	if err != nil {
		fmt.Println("No review files found")
		return
	}
	fmt.Printf("Loading: %s\n", path)

	collected, err := storage.ReadReviews(path)
	if err != nil {
		logger.Fatal("Failed to read reviews file", zap.Error(err))
	}
	fmt.Printf("Reviews: %d\n", len(collected))

	classified := classifyAll(collected)
	if len(classified) == 0 {
		fmt.Println("No usable reviews to analyze")
		return
	}

	rows := make([]storage.ResultRow, 0, len(classified))
	for _, review := range classified {
		rows = append(rows, storage.NewResultRow(review))
	}
	if err := storage.WriteResults(cfg.ResultsPath(), rows); err != nil {
		logger.Fatal("Failed to write results file", zap.Error(err))
	}

	summary, err := aggregate.Summarize(classified)
	if err != nil {
		logger.Fatal("Failed to aggregate results", zap.Error(err))
	}

	printReport(summary)
	fmt.Printf("\nResults written to %s\n", cfg.ResultsPath())
}

// classifyAll runs the sentiment classifier over every usable review.
// Reviews below the collector's minimum length should not occur in stored
// files, but are skipped again here so stale files stay safe to analyze.
func classifyAll(collected []models.Review) []models.ClassifiedReview {
	classified := make([]models.ClassifiedReview, 0, len(collected))
	for _, review := range collected {
		if len(review.Text) < 20 {
			continue
		}
		label, score := sentiment.Classify(review.Text)
		classified = append(classified, models.ClassifiedReview{
			Review:         review,
			Sentiment:      label,
			SentimentScore: score,
			Issues:         sentiment.DetectIssues(review.Text),
		})
	}
	return classified
}

func printReport(summary *models.SentimentSummary) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("SENTIMENT REPORT")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Positive: %d\n", summary.SentimentDistribution[models.SentimentPositive])
	fmt.Printf("Neutral:  %d\n", summary.SentimentDistribution[models.SentimentNeutral])
	fmt.Printf("Negative: %d\n", summary.SentimentDistribution[models.SentimentNegative])
	fmt.Printf("Average score:  %.3f\n", summary.AverageSentimentScore)
	fmt.Printf("Average rating: %.1f\n", summary.AverageRating)

	fmt.Println("\nTop Issues:")
	for i, issue := range summary.TopIssues {
		if i >= topIssueCount {
			break
		}
		fmt.Printf("  - %s: %d\n", issue.Issue, issue.Count)
	}
}
