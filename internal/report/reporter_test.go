package report

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/models"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/storage"
)

func TestSummaryFallsBackWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentiment_results.csv")
	reporter := NewReporter(path, models.SampleSummary, zap.NewNop())

	got := reporter.Summary()
	if got.TotalReviews != models.SampleSummary.TotalReviews {
		t.Errorf("TotalReviews = %d, want sample payload (%d)", got.TotalReviews, models.SampleSummary.TotalReviews)
	}
	if len(got.TopIssues) == 0 || got.TopIssues[0].Issue != "rash" {
		t.Errorf("TopIssues = %v, want sample ranking", got.TopIssues)
	}
}

func TestSummaryFallsBackWhenFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentiment_results.csv")
	if err := storage.WriteResults(path, nil); err != nil {
		t.Fatal(err)
	}

	reporter := NewReporter(path, models.SampleSummary, zap.NewNop())
	got := reporter.Summary()
	if got.TotalReviews != models.SampleSummary.TotalReviews {
		t.Errorf("empty results file should serve the sample, got %+v", got)
	}
}

func TestSummaryUsesComputedResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentiment_results.csv")
	rows := []storage.ResultRow{
		{ProductName: "Cleanser", Rating: 5, Sentiment: models.SentimentPositive, Score: 0.8},
		{ProductName: "Cleanser", Rating: 4, Sentiment: models.SentimentPositive, Score: 0.4},
		{ProductName: "Serum", Rating: 1, Sentiment: models.SentimentNegative, Score: -0.6, Issues: "rash;sensitivity"},
		{ProductName: "Serum", Rating: 2, Sentiment: models.SentimentNegative, Score: -0.2, Issues: "rash"},
	}
	if err := storage.WriteResults(path, rows); err != nil {
		t.Fatal(err)
	}

	reporter := NewReporter(path, models.SampleSummary, zap.NewNop())
	got := reporter.Summary()

	if got.TotalReviews != 4 {
		t.Fatalf("TotalReviews = %d, want 4 (computed, not sample)", got.TotalReviews)
	}
	if got.SentimentDistribution[models.SentimentPositive] != 2 ||
		got.SentimentDistribution[models.SentimentNegative] != 2 {
		t.Errorf("distribution = %v", got.SentimentDistribution)
	}

	// Top issues come from the stored rows, never from the sample payload.
	if len(got.TopIssues) != 2 {
		t.Fatalf("TopIssues = %v, want 2 computed issues", got.TopIssues)
	}
	if got.TopIssues[0].Issue != "rash" || got.TopIssues[0].Count != 2 {
		t.Errorf("TopIssues[0] = %+v, want rash x2", got.TopIssues[0])
	}
	if got.TopIssues[1].Issue != "sensitivity" || got.TopIssues[1].Count != 1 {
		t.Errorf("TopIssues[1] = %+v, want sensitivity x1", got.TopIssues[1])
	}
}
