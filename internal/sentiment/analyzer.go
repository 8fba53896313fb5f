// Package sentiment implements a deterministic lexicon/rule-based polarity
// analyzer for review text, plus adverse-reaction keyword detection.
package sentiment

import (
	"math"
	"strings"
	"unicode"
)

const (
	// Label thresholds on the compound score. Fixed, not configurable per call;
	// the boundary values themselves classify as positive/negative.
	positiveThreshold = 0.05
	negativeThreshold = -0.05

	// Normalization constant for the compound score, after the usual
	// score/sqrt(score^2+alpha) scheme.
	normAlpha = 15.0

	// Valence multiplier applied when a negator precedes a sentiment token.
	negationFactor = -0.74

	// How many preceding tokens are scanned for negators and boosters.
	shifterWindow = 3
)

// Classify computes the compound polarity score of text and maps it to a label.
// Pure function of the input and the fixed lexicon; identical input yields
// identical output.
func Classify(text string) (label string, score float64) {
	score = Compound(text)
	return LabelFor(score), score
}

// LabelFor maps a compound score onto a discrete sentiment label.
func LabelFor(score float64) string {
	switch {
	case score >= positiveThreshold:
		return "positive"
	case score <= negativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// Compound sums the shifted valences of all sentiment-bearing tokens and
// normalizes the result into [-1, 1].
func Compound(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	for i, token := range tokens {
		valence, ok := lexicon[token]
		if !ok {
			continue
		}
		sum += shiftedValence(valence, tokens, i)
	}

	if sum == 0 {
		return 0
	}
	compound := sum / math.Sqrt(sum*sum+normAlpha)
	return math.Max(-1, math.Min(1, compound))
}

// DetectIssues scans text for the fixed adverse-reaction keyword table and
// returns the matched category names. Each category appears at most once.
func DetectIssues(text string) []string {
	lower := strings.ToLower(text)

	var detected []string
	for _, cat := range issueCategories {
		for _, keyword := range cat.keywords {
			if strings.Contains(lower, keyword) {
				detected = append(detected, cat.name)
				break
			}
		}
	}
	return detected
}

// shiftedValence applies booster and negator words found in the window of
// tokens preceding position i.
func shiftedValence(valence float64, tokens []string, i int) float64 {
	v := valence

	for dist := 1; dist <= shifterWindow && i-dist >= 0; dist++ {
		prev := tokens[i-dist]

		if b, ok := boosters[prev]; ok {
			// Boost fades with distance from the sentiment token.
			scalar := b * (1 - 0.05*float64(dist-1))
			if v < 0 {
				scalar = -scalar
			}
			v += scalar
		}

		if negators[prev] {
			v *= negationFactor
			break
		}
	}
	return v
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}
