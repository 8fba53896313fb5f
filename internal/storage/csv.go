// Package storage persists collected reviews and classification results as
// flat tabular files.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/models"
)

// maxStoredTextLength bounds the review text kept in result rows.
const maxStoredTextLength = 100

// ResultRow is one classified review as persisted in the results file.
type ResultRow struct {
	ProductName string  `csv:"product_name"`
	Rating      float64 `csv:"rating"`
	Sentiment   string  `csv:"sentiment"`
	Score       float64 `csv:"score"`
	Issues      string  `csv:"issues"` // semicolon-joined issue categories
	Text        string  `csv:"text"`   // truncated
}

// NewResultRow converts a classified review into its persisted form.
func NewResultRow(r models.ClassifiedReview) ResultRow {
	text := r.Text
	if len(text) > maxStoredTextLength {
		text = text[:maxStoredTextLength]
	}
	return ResultRow{
		ProductName: r.ProductName,
		Rating:      r.Rating,
		Sentiment:   r.Sentiment,
		Score:       r.SentimentScore,
		Issues:      strings.Join(r.Issues, ";"),
		Text:        text,
	}
}

// ToClassified rebuilds the classified review fields needed for aggregation.
func (row ResultRow) ToClassified() models.ClassifiedReview {
	var issues []string
	if row.Issues != "" {
		issues = strings.Split(row.Issues, ";")
	}
	return models.ClassifiedReview{
		Review: models.Review{
			ProductName: row.ProductName,
			Rating:      row.Rating,
		},
		Sentiment:      row.Sentiment,
		SentimentScore: row.Score,
		Issues:         issues,
	}
}

// WriteReviews writes collected reviews to path, creating parent directories.
func WriteReviews(path string, reviews []models.Review) error {
	return writeCSV(path, &reviews)
}

// ReadReviews loads a previously written reviews file.
func ReadReviews(path string) ([]models.Review, error) {
	var reviews []models.Review
	if err := readCSV(path, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// WriteResults writes classification results to path.
func WriteResults(path string, rows []ResultRow) error {
	return writeCSV(path, &rows)
}

// ReadResults loads a previously written results file.
func ReadResults(path string) ([]ResultRow, error) {
	var rows []ResultRow
	if err := readCSV(path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReviewsPath builds a timestamped file name for a new collection run.
func ReviewsPath(dir string) string {
	return filepath.Join(dir, fmt.Sprintf("reviews_%s.csv", time.Now().Format("20060102_150405")))
}

// LatestReviewFile returns the most recently modified reviews file in dir.
func LatestReviewFile(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "reviews_*.csv"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no review files found in %s", dir)
	}

	var latest string
	var latestMod time.Time
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = match
			latestMod = info.ModTime()
		}
	}
	if latest == "" {
		return "", fmt.Errorf("no readable review files in %s", dir)
	}
	return latest, nil
}

func writeCSV(path string, records interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(records, file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readCSV(path string, records interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err := gocsv.UnmarshalFile(file, records); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
