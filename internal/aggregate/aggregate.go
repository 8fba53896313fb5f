// Package aggregate computes distributional statistics over classified reviews.
package aggregate

import (
	"errors"
	"math"
	"sort"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/models"
)

// ErrNoReviews is returned when aggregation is requested over zero reviews;
// means over an empty set are undefined and callers must handle this explicitly.
var ErrNoReviews = errors.New("no reviews to aggregate")

// Summarize builds a full report from classified reviews. The report is
// recomputed from scratch on every call; nothing is cached or updated in place.
func Summarize(reviews []models.ClassifiedReview) (*models.SentimentSummary, error) {
	if len(reviews) == 0 {
		return nil, ErrNoReviews
	}

	total := len(reviews)
	distribution := map[string]int{
		models.SentimentPositive: 0,
		models.SentimentNeutral:  0,
		models.SentimentNegative: 0,
	}

	var scoreSum, ratingSum float64
	for _, r := range reviews {
		distribution[r.Sentiment]++
		scoreSum += r.SentimentScore
		ratingSum += r.Rating
	}

	percentages := make(map[string]float64, len(distribution))
	for label, count := range distribution {
		// Rounded independently per label; the three values may not sum to 100.0.
		percentages[label] = round(float64(count)/float64(total)*100, 1)
	}

	return &models.SentimentSummary{
		TotalReviews:          total,
		SentimentDistribution: distribution,
		Percentages:           percentages,
		AverageSentimentScore: round(scoreSum/float64(total), 3),
		AverageRating:         round(ratingSum/float64(total), 1),
		TopIssues:             IssueFrequency(reviews),
	}, nil
}

// IssueFrequency flattens every review's detected issues into one ranking,
// sorted descending by count. Equal counts keep first-encountered order.
func IssueFrequency(reviews []models.ClassifiedReview) []models.IssueCount {
	counts := make(map[string]int)
	var order []string

	for _, r := range reviews {
		for _, issue := range r.Issues {
			if _, seen := counts[issue]; !seen {
				order = append(order, issue)
			}
			counts[issue]++
		}
	}

	ranking := make([]models.IssueCount, 0, len(order))
	for _, issue := range order {
		ranking = append(ranking, models.IssueCount{Issue: issue, Count: counts[issue]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	return ranking
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
