package models

// IssueCount is one entry of a top-issues ranking.
type IssueCount struct {
	Issue string `json:"issue"`
	Count int    `json:"count"`
}

// SentimentSummary is the AggregateReport-shaped payload served by the summary endpoint
// and printed by the analyze CLI.
type SentimentSummary struct {
	TotalReviews          int                `json:"total_reviews"`
	SentimentDistribution map[string]int     `json:"sentiment_distribution"`
	Percentages           map[string]float64 `json:"percentages"`
	AverageSentimentScore float64            `json:"average_sentiment_score"`
	AverageRating         float64            `json:"average_rating"`
	TopIssues             []IssueCount       `json:"top_issues"`
}

// SampleSummary is the documented degraded-mode payload returned when no computed
// sentiment results exist yet. It mirrors real data in shape only.
var SampleSummary = SentimentSummary{
	TotalReviews: 17,
	SentimentDistribution: map[string]int{
		SentimentPositive: 10,
		SentimentNeutral:  3,
		SentimentNegative: 4,
	},
	Percentages: map[string]float64{
		SentimentPositive: 58.8,
		SentimentNeutral:  17.6,
		SentimentNegative: 23.5,
	},
	AverageSentimentScore: 0.245,
	AverageRating:         3.8,
	TopIssues: []IssueCount{
		{Issue: "rash", Count: 3},
		{Issue: "acne", Count: 2},
		{Issue: "dryness", Count: 2},
		{Issue: "irritation", Count: 2},
		{Issue: "sensitivity", Count: 1},
	},
}
