package sentiment

// Valence lexicon for cosmetic review text. Values follow the usual rule-based
// convention of roughly [-4, 4] before normalization. The tables below are fixed
// process-wide configuration: initialized once, never mutated, safe to share.
var lexicon = map[string]float64{
	// positive
	"amazing":     2.8,
	"awesome":     3.1,
	"beautiful":   2.9,
	"best":        3.2,
	"calming":     1.7,
	"clean":       1.6,
	"clear":       1.5,
	"cleared":     1.8,
	"excellent":   3.2,
	"fantastic":   3.0,
	"favorite":    2.0,
	"fresh":       1.3,
	"gentle":      1.5,
	"glowing":     2.2,
	"good":        1.9,
	"great":       3.1,
	"happy":       2.7,
	"healthy":     1.7,
	"helped":      1.8,
	"helps":       1.6,
	"hydrated":    1.7,
	"hydrating":   1.6,
	"improved":    1.9,
	"impressed":   2.3,
	"like":        1.5,
	"love":        3.2,
	"loved":       2.9,
	"loves":       2.7,
	"moisturizing": 1.6,
	"nice":        1.8,
	"nourishing":  1.7,
	"perfect":     2.7,
	"pleasant":    2.3,
	"radiant":     2.1,
	"recommend":   1.8,
	"refreshing":  1.9,
	"smooth":      1.7,
	"soft":        1.5,
	"soothing":    1.8,
	"wonderful":   2.7,
	"works":       1.4,
	"worth":       1.7,

	// negative
	"allergic":     -1.6,
	"awful":        -2.0,
	"bad":          -2.5,
	"breakout":     -1.9,
	"breakouts":    -1.9,
	"broke":        -1.5,
	"burn":         -1.8,
	"burned":       -2.0,
	"burning":      -2.2,
	"burns":        -1.9,
	"disappointed": -2.2,
	"disappointing": -2.1,
	"disgusting":   -2.4,
	"flaky":        -1.3,
	"greasy":       -1.4,
	"harsh":        -1.7,
	"hate":         -2.7,
	"hated":        -2.6,
	"horrible":     -2.5,
	"hurt":         -2.1,
	"hurts":        -2.1,
	"irritated":    -1.9,
	"irritating":   -1.9,
	"irritation":   -1.8,
	"itchy":        -1.8,
	"nasty":        -2.2,
	"painful":      -2.3,
	"peeling":      -1.3,
	"pimples":      -1.6,
	"rash":         -1.9,
	"reaction":     -1.2,
	"redness":      -1.5,
	"ruined":       -2.5,
	"sting":        -1.6,
	"stinging":     -1.8,
	"stings":       -1.6,
	"terrible":     -2.1,
	"useless":      -2.0,
	"waste":        -1.8,
	"worst":        -3.1,
	"worthless":    -2.3,
}

// boosters intensify or dampen the valence of a nearby sentiment-bearing token.
var boosters = map[string]float64{
	"absolutely": 0.293,
	"completely": 0.293,
	"extremely":  0.293,
	"incredibly": 0.293,
	"really":     0.267,
	"so":         0.2,
	"super":      0.267,
	"totally":    0.267,
	"very":       0.293,

	"barely":   -0.293,
	"hardly":   -0.293,
	"kind":     -0.2, // "kind of"
	"slightly": -0.293,
	"somewhat": -0.2,
}

// negators flip and damp the valence of a following sentiment-bearing token.
var negators = map[string]bool{
	"cannot":    true,
	"cant":      true,
	"can't":     true,
	"didnt":     true,
	"didn't":    true,
	"doesnt":    true,
	"doesn't":   true,
	"dont":      true,
	"don't":     true,
	"isnt":      true,
	"isn't":     true,
	"never":     true,
	"no":        true,
	"not":       true,
	"nothing":   true,
	"wasnt":     true,
	"wasn't":    true,
	"wont":      true,
	"won't":     true,
	"wouldnt":   true,
	"wouldn't":  true,
}

// issueCategory maps an adverse-reaction label to its keyword variants.
type issueCategory struct {
	name     string
	keywords []string
}

// issueCategories is matched by case-insensitive substring; a category is reported
// at most once per text, and categories match independently of each other.
var issueCategories = []issueCategory{
	{name: "rash", keywords: []string{"rash", "redness", "itchy", "irritation", "burning"}},
	{name: "acne", keywords: []string{"acne", "breakout", "pimple"}},
	{name: "dryness", keywords: []string{"dry", "flaky", "peeling", "tight"}},
	{name: "oiliness", keywords: []string{"oily", "greasy"}},
	{name: "sensitivity", keywords: []string{"sensitive", "allergic", "reaction", "sting"}},
}
