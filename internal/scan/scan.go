// Package scan defines the label-scanning capabilities the service depends on.
// Both are served by stub implementations until real integrations land; callers
// depend only on the interfaces and need no changes when they do.
package scan

// ExtractedText is the result of running OCR over a product label image.
type ExtractedText struct {
	Text        string   `json:"extracted_text"`
	Ingredients []string `json:"ingredients"`
}

// TextExtractor extracts ingredient text from an uploaded label image.
type TextExtractor interface {
	ExtractText(image []byte, filename string) (*ExtractedText, error)
}

// IngredientScore is the hazard assessment of a single ingredient.
type IngredientScore struct {
	Ingredient  string   `json:"ingredient"`
	SafetyScore int      `json:"safety_score"` // 1 (hazardous) to 10 (benign)
	Rating      string   `json:"rating"`
	Hazards     []string `json:"hazards"`
}

// HazardReport scores a set of ingredients.
type HazardReport struct {
	Results       []IngredientScore `json:"results"`
	AverageScore  float64           `json:"average_score"`
	OverallRating string            `json:"overall_rating"`
}

// HazardScorer assesses ingredient safety.
type HazardScorer interface {
	Score(ingredients []string) (*HazardReport, error)
}
