package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/models"
)

// SummarySource produces the sentiment summary payload, degraded mode included.
type SummarySource interface {
	Summary() models.SentimentSummary
}

type SentimentHandler struct {
	source SummarySource
	logger *zap.Logger
}

func NewSentimentHandler(source SummarySource, logger *zap.Logger) *SentimentHandler {
	return &SentimentHandler{source: source, logger: logger}
}

// GetSummary handles GET /api/sentiment/summary. Always 200: the reporter
// substitutes the sample payload when no computed data exists.
func (h *SentimentHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.source.Summary()})
}

// Health handles GET /api/sentiment/health
func (h *SentimentHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Sentiment API is working"})
}
