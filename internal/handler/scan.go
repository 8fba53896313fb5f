package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/scan"
)

type ScanHandler struct {
	extractor scan.TextExtractor
	scorer    scan.HazardScorer
	logger    *zap.Logger
}

func NewScanHandler(extractor scan.TextExtractor, scorer scan.HazardScorer, logger *zap.Logger) *ScanHandler {
	return &ScanHandler{extractor: extractor, scorer: scorer, logger: logger}
}

// ExtractText handles POST /api/ocr/extract-text with a multipart "file" field.
func (h *ScanHandler) ExtractText(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file upload required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to read upload"})
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to read upload"})
		return
	}

	extracted, err := h.extractor.ExtractText(contents, fileHeader.Filename)
	if err != nil {
		h.logger.Error("OCR extraction failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "OCR processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"filename":       fileHeader.Filename,
		"extracted_text": extracted.Text,
		"ingredients":    extracted.Ingredients,
	})
}

// BatchCheck handles POST /api/ingredients/batch-check with a JSON string array.
func (h *ScanHandler) BatchCheck(c *gin.Context) {
	var ingredients []string
	if err := c.ShouldBindJSON(&ingredients); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "expected a JSON array of ingredient names"})
		return
	}

	report, err := h.scorer.Score(ingredients)
	if err != nil {
		h.logger.Error("Hazard scoring failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Ingredient check failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"results":        report.Results,
		"average_score":  report.AverageScore,
		"overall_rating": report.OverallRating,
	})
}
