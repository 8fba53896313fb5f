package models

import "time"

// Sentiment labels assigned by the classifier.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Review is a single product review as extracted by the collector.
// Reviews with body text shorter than 20 characters are never produced.
type Review struct {
	ProductID   string    `csv:"product_id" json:"product_id"`
	ProductName string    `csv:"product_name" json:"product_name"`
	Rating      float64   `csv:"rating" json:"rating"` // 0 means "unknown", not an error
	Title       string    `csv:"title" json:"title"`
	Text        string    `csv:"text" json:"text"`
	CollectedAt time.Time `csv:"collected_at" json:"collected_at"`
}

// ClassifiedReview is a Review plus the classifier's verdict. Derived, one per review.
type ClassifiedReview struct {
	Review
	Sentiment      string   `json:"sentiment"`
	SentimentScore float64  `json:"sentiment_score"` // compound score in [-1, 1]
	Issues         []string `json:"issues"`
}
