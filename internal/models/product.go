package models

// ProductRecord is the canonical product representation returned by barcode lookups.
// It is built once per lookup and not mutated afterwards.
type ProductRecord struct {
	Barcode     string   `json:"barcode"`
	Name        string   `json:"product_name"`
	Brand       string   `json:"brands"`
	Ingredients []string `json:"ingredients"` // single source: structured entries, tags, or text split
	Categories  []string `json:"categories,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Source      string   `json:"source"`
}

// UniversalRecord is a ProductRecord plus the product type detected by the
// universal (all-product-types) database, e.g. "beauty", "food", "petfood".
type UniversalRecord struct {
	ProductRecord
	DetectedType string `json:"detected_type"`
}
