package sentiment

import (
	"reflect"
	"testing"
)

func TestLabelForThresholds(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{name: "well above threshold", score: 0.6, want: "positive"},
		{name: "exactly positive boundary", score: 0.05, want: "positive"},
		{name: "just below positive boundary", score: 0.049, want: "neutral"},
		{name: "zero", score: 0, want: "neutral"},
		{name: "just above negative boundary", score: -0.049, want: "neutral"},
		{name: "exactly negative boundary", score: -0.05, want: "negative"},
		{name: "well below threshold", score: -0.6, want: "negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LabelFor(tc.score); got != tc.want {
				t.Errorf("LabelFor(%v) = %q, want %q", tc.score, got, tc.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "positive review",
			text: "I love this cream, it works great and leaves my skin soft",
			want: "positive",
		},
		{
			name: "adverse reaction review",
			text: "This caused a horrible rash and burning",
			want: "negative",
		},
		{
			name: "no sentiment-bearing words",
			text: "I bought this at the store last week",
			want: "neutral",
		},
		{
			name: "negated positive",
			text: "This moisturizer is not good at all",
			want: "negative",
		},
		{
			name: "boosted positive",
			text: "Absolutely love this serum",
			want: "positive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			label, score := Classify(tc.text)
			if label != tc.want {
				t.Errorf("Classify(%q) label = %q (score %v), want %q", tc.text, label, score, tc.want)
			}
			if score < -1 || score > 1 {
				t.Errorf("compound score %v out of [-1, 1]", score)
			}
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	text := "This caused a horrible rash and burning"

	label1, score1 := Classify(text)
	label2, score2 := Classify(text)

	if label1 != label2 || score1 != score2 {
		t.Errorf("classification is not deterministic: (%q, %v) vs (%q, %v)",
			label1, score1, label2, score2)
	}
}

func TestClassifyScoreSign(t *testing.T) {
	// The adverse-reaction scenario must clear the negative threshold, not just lean negative.
	_, score := Classify("This caused a horrible rash and burning")
	if score > -0.05 {
		t.Errorf("expected score <= -0.05, got %v", score)
	}
}

func TestDetectIssues(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single category",
			text: "This caused a horrible rash and burning",
			want: []string{"rash"},
		},
		{
			name: "category reported once despite two keywords",
			text: "So much redness and irritation everywhere",
			want: []string{"rash"},
		},
		{
			name: "multiple independent categories",
			text: "Left my skin oily and greasy and triggered a breakout",
			want: []string{"acne", "oiliness"},
		},
		{
			name: "case insensitive",
			text: "My skin got DRY and Flaky",
			want: []string{"dryness"},
		},
		{
			name: "no issues",
			text: "Lovely texture and a pleasant smell",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectIssues(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("DetectIssues(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
