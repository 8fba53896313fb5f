// Package report serves sentiment summaries with an explicit degraded-mode
// fallback: computed results when present, a named static sample otherwise.
package report

import (
	"os"

	"go.uber.org/zap"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/aggregate"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/models"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/storage"
)

// Reporter produces the sentiment summary payload. The fallback is a policy
// parameter, not hidden global state: callers choose what degraded mode serves.
type Reporter struct {
	resultsPath string
	fallback    models.SentimentSummary
	logger      *zap.Logger
}

// NewReporter creates a reporter reading computed results from resultsPath.
func NewReporter(resultsPath string, fallback models.SentimentSummary, logger *zap.Logger) *Reporter {
	return &Reporter{
		resultsPath: resultsPath,
		fallback:    fallback,
		logger:      logger,
	}
}

// Summary returns the computed report when the results file exists and is
// non-empty, and the fallback payload otherwise. It never fails: the service
// boundary always receives a well-formed summary. Top issues in real mode are
// recomputed from the stored results, never taken from the sample.
func (r *Reporter) Summary() models.SentimentSummary {
	if _, err := os.Stat(r.resultsPath); err != nil {
		r.logger.Info("No sentiment results file, serving sample data",
			zap.String("path", r.resultsPath))
		return r.fallback
	}

	rows, err := storage.ReadResults(r.resultsPath)
	if err != nil {
		r.logger.Warn("Failed to read sentiment results, serving sample data",
			zap.String("path", r.resultsPath), zap.Error(err))
		return r.fallback
	}

	classified := make([]models.ClassifiedReview, 0, len(rows))
	for _, row := range rows {
		classified = append(classified, row.ToClassified())
	}

	summary, err := aggregate.Summarize(classified)
	if err != nil {
		// Empty results file: degraded mode, same as no file at all.
		r.logger.Info("Sentiment results file is empty, serving sample data",
			zap.String("path", r.resultsPath))
		return r.fallback
	}

	return *summary
}
