package scan

import "strings"

// StubExtractor returns a fixed ingredient list regardless of input.
// Stands in for a vision OCR integration.
type StubExtractor struct{}

func (StubExtractor) ExtractText(_ []byte, _ string) (*ExtractedText, error) {
	return &ExtractedText{
		Text: "Ingredients: Water, Glycerin, Sodium Laureth Sulfate...",
		Ingredients: []string{
			"Water",
			"Glycerin",
			"Sodium Laureth Sulfate",
			"Cocamidopropyl Betaine",
			"Fragrance",
		},
	}, nil
}

// StubScorer scores water-based ingredients as benign and everything else as
// moderate. Stands in for an ingredient hazard database integration.
type StubScorer struct{}

func (StubScorer) Score(ingredients []string) (*HazardReport, error) {
	results := make([]IngredientScore, 0, len(ingredients))
	var total float64

	for _, ingredient := range ingredients {
		score := IngredientScore{Ingredient: ingredient}
		if strings.Contains(strings.ToLower(ingredient), "water") {
			score.SafetyScore = 8
			score.Rating = "Excellent"
			score.Hazards = []string{}
		} else {
			score.SafetyScore = 4
			score.Rating = "Moderate"
			score.Hazards = []string{"Potential skin irritation"}
		}
		total += float64(score.SafetyScore)
		results = append(results, score)
	}

	report := &HazardReport{Results: results, OverallRating: "Moderate"}
	if len(results) > 0 {
		report.AverageScore = total / float64(len(results))
	}
	return report, nil
}
