// Package reviews collects product reviews from retail review pages.
package reviews

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/models"
)

// minTextLength is the shortest review body worth keeping. Shorter or missing
// text drops the review silently; it is not an error.
const minTextLength = 20

var ratingPattern = regexp.MustCompile(`(\d+\.?\d*)`)

// Product identifies one catalog entry to collect reviews for.
type Product struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Collector fetches paginated review pages sequentially. Pages are never
// fetched concurrently; the politeness delays bound the outbound request rate
// against the target site.
type Collector struct {
	baseURL      string
	httpClient   *http.Client
	logger       *zap.Logger
	pageDelayMin time.Duration
	pageDelayMax time.Duration
	productDelay time.Duration
	sleep        func(time.Duration)
}

// Browser-like header set; the review pages serve block pages to bare clients.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept-Language": "en-US, en;q=0.9",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Connection":      "keep-alive",
}

// NewCollector creates a collector rooted at baseURL (the retail site origin).
func NewCollector(baseURL string, logger *zap.Logger) *Collector {
	return &Collector{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:       logger,
		pageDelayMin: time.Second,
		pageDelayMax: 2 * time.Second,
		productDelay: 2 * time.Second,
		sleep:        time.Sleep,
	}
}

// Collect fetches up to maxPages of reviews for a single product. A page-level
// transport error aborts collection for this product only; everything
// accumulated so far is returned.
func (c *Collector) Collect(ctx context.Context, product Product, maxPages int) []models.Review {
	var collected []models.Review

	c.logger.Info("Scraping reviews", zap.String("product_id", product.ID), zap.String("name", product.Name))

	for page := 1; page <= maxPages; page++ {
		pageReviews, err := c.collectPage(ctx, product, page)
		if err != nil {
			c.logger.Warn("Aborting product after page error",
				zap.String("product_id", product.ID),
				zap.Int("page", page),
				zap.Error(err))
			break
		}

		c.logger.Info("Page scraped",
			zap.String("product_id", product.ID),
			zap.Int("page", page),
			zap.Int("reviews", len(pageReviews)))
		collected = append(collected, pageReviews...)

		if page < maxPages {
			c.sleep(c.pageDelay())
		}
	}

	return collected
}

// CollectAll walks the product catalog sequentially, pausing between products.
// A failing product does not abort the batch.
func (c *Collector) CollectAll(ctx context.Context, catalog []Product, maxPages int) []models.Review {
	var all []models.Review

	for i, product := range catalog {
		all = append(all, c.Collect(ctx, product, maxPages)...)
		if i < len(catalog)-1 {
			c.sleep(c.productDelay)
		}
	}

	c.logger.Info("Collection finished", zap.Int("products", len(catalog)), zap.Int("reviews", len(all)))
	return all
}

func (c *Collector) collectPage(ctx context.Context, product Product, page int) ([]models.Review, error) {
	url := fmt.Sprintf("%s/product-reviews/%s/ref=cm_cr_arp_d_paging_btm_next_%d?pageNumber=%d",
		c.baseURL, product.ID, page, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	var reviews []models.Review
	doc.Find(`div[data-hook="review"]`).Each(func(_ int, block *goquery.Selection) {
		// One malformed block must not abort the page; extraction defaults
		// missing pieces and drops the review only on unusable text.
		review, ok := extractReview(block, product)
		if ok {
			reviews = append(reviews, review)
		}
	})

	return reviews, nil
}

// extractReview pulls one review out of its markup block. Returns false when
// the body text is missing or shorter than minTextLength.
func extractReview(block *goquery.Selection, product Product) (models.Review, bool) {
	text := strings.TrimSpace(block.Find(`span[data-hook="review-body"]`).First().Text())
	if len(text) < minTextLength {
		return models.Review{}, false
	}

	return models.Review{
		ProductID:   product.ID,
		ProductName: product.Name,
		Rating:      parseRating(block.Find(`i[data-hook="review-star-rating"]`).First().Text()),
		Title:       strings.TrimSpace(block.Find(`a[data-hook="review-title"]`).First().Text()),
		Text:        text,
		CollectedAt: time.Now(),
	}, true
}

// parseRating takes the first decimal number found in the rating element's
// text. No number, or no element, means rating 0: unknown, not fatal.
func parseRating(text string) float64 {
	match := ratingPattern.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0
	}
	rating, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return rating
}

func (c *Collector) pageDelay() time.Duration {
	spread := c.pageDelayMax - c.pageDelayMin
	if spread <= 0 {
		return c.pageDelayMin
	}
	return c.pageDelayMin + time.Duration(rand.Int63n(int64(spread)))
}
