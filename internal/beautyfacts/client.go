package beautyfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/models"
)

const (
	userAgent      = "CosmeticSafetyScanner/1.0"
	requestTimeout = 10 * time.Second

	// Status discriminator in the lookup payload. Anything else, including an
	// absent field, means the product is not in the database.
	statusFound = 1

	defaultName  = "Unknown"
	defaultBrand = "Unknown"
)

// ErrNotFound is returned when the upstream database does not know the barcode.
var ErrNotFound = errors.New("product not found")

// TransportError wraps a network, timeout, or non-2xx failure from the upstream API.
// Lookups are attempted exactly once; there is no retry.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("product API request failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Client is a client for the Open Beauty Facts product API.
// Each Client owns its own http.Client and is safe for concurrent use.
type Client struct {
	baseURL      string
	universalURL string
	httpClient   *http.Client // no redirect following
	redirClient  *http.Client // follows redirects, used by UniversalLookup
	logger       *zap.Logger
}

// NewClient creates a new product lookup client. baseURL is the cosmetic database,
// universalURL the all-product-types database used by UniversalLookup.
func NewClient(baseURL, universalURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		universalURL: strings.TrimRight(universalURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		redirClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// lookupPayload is the upstream response envelope.
type lookupPayload struct {
	Status  int            `json:"status"`
	Product productPayload `json:"product"`
}

type productPayload struct {
	Code            string            `json:"code"`
	ProductName     string            `json:"product_name"`
	Brands          string            `json:"brands"`
	Ingredients     []ingredientEntry `json:"ingredients"`
	IngredientsTags []string          `json:"ingredients_tags"`
	IngredientsText string            `json:"ingredients_text"`
	CategoriesTags  []string          `json:"categories_tags"`
	ImageURL        string            `json:"image_url"`
	ProductType     string            `json:"product_type"`
}

type ingredientEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Lookup fetches a cosmetic product by barcode and normalizes it into a ProductRecord.
// Returns ErrNotFound if the database has no entry, or a *TransportError on failure.
func (c *Client) Lookup(ctx context.Context, barcode string) (*models.ProductRecord, error) {
	url := fmt.Sprintf("%s/product/%s.json", c.baseURL, barcode)

	payload, err := c.fetch(ctx, c.httpClient, url)
	if err != nil {
		return nil, err
	}

	if payload.Status != statusFound {
		c.logger.Info("Product not found in database", zap.String("barcode", barcode))
		return nil, ErrNotFound
	}

	record := newProductRecord(barcode, &payload.Product)
	c.logger.Info("Product found",
		zap.String("barcode", record.Barcode),
		zap.String("name", record.Name),
		zap.Int("ingredients", len(record.Ingredients)))
	return record, nil
}

// UniversalLookup queries the all-product-types database so callers can tell
// cosmetic products apart from food or pet food. Unlike Lookup it follows redirects.
func (c *Client) UniversalLookup(ctx context.Context, barcode string) (*models.UniversalRecord, error) {
	url := fmt.Sprintf("%s/product/%s.json?product_type=all", c.universalURL, barcode)

	payload, err := c.fetch(ctx, c.redirClient, url)
	if err != nil {
		return nil, err
	}

	if payload.Status != statusFound {
		return nil, ErrNotFound
	}

	detected := payload.Product.ProductType
	if detected == "" {
		detected = "unknown"
	}

	record := newProductRecord(barcode, &payload.Product)
	c.logger.Info("Universal scan matched product",
		zap.String("barcode", barcode),
		zap.String("detected_type", detected))
	return &models.UniversalRecord{ProductRecord: *record, DetectedType: detected}, nil
}

func (c *Client) fetch(ctx context.Context, httpClient *http.Client, url string) (*lookupPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var payload lookupPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &TransportError{Cause: fmt.Errorf("failed to decode response: %w", err)}
	}
	return &payload, nil
}

// newProductRecord maps the upstream payload onto the canonical record,
// substituting named defaults for absent fields.
func newProductRecord(barcode string, p *productPayload) *models.ProductRecord {
	code := p.Code
	if code == "" {
		code = barcode
	}
	name := p.ProductName
	if name == "" {
		name = defaultName
	}
	brand := p.Brands
	if brand == "" {
		brand = defaultBrand
	}

	return &models.ProductRecord{
		Barcode:     code,
		Name:        name,
		Brand:       brand,
		Ingredients: extractIngredients(p),
		Categories:  stripTagPrefixes(p.CategoriesTags),
		ImageURL:    p.ImageURL,
		Source:      "Open Beauty Facts",
	}
}

// extractIngredients picks exactly one ingredient source, in precedence order:
// structured entries, then tags, then a comma split of the free-text field.
// Sources are never merged.
func extractIngredients(p *productPayload) []string {
	if len(p.Ingredients) > 0 {
		out := make([]string, 0, len(p.Ingredients))
		for _, ing := range p.Ingredients {
			text := strings.TrimSpace(ing.Text)
			if text == "" {
				text = stripTagPrefix(ing.ID)
			}
			if text != "" {
				out = append(out, text)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	if len(p.IngredientsTags) > 0 {
		return stripTagPrefixes(p.IngredientsTags)
	}

	if strings.TrimSpace(p.IngredientsText) != "" {
		parts := strings.Split(p.IngredientsText, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}

	return nil
}

// stripTagPrefix removes the language prefix from a taxonomy tag, e.g. "en:aqua" -> "aqua".
func stripTagPrefix(tag string) string {
	if i := strings.Index(tag, ":"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

func stripTagPrefixes(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if stripped := strings.TrimSpace(stripTagPrefix(tag)); stripped != "" {
			out = append(out, stripped)
		}
	}
	return out
}
