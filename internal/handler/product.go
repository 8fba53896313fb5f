package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/beautyfacts"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/models"
)

// ProductLookup is the slice of the lookup client the handler depends on.
type ProductLookup interface {
	Lookup(ctx context.Context, barcode string) (*models.ProductRecord, error)
	UniversalLookup(ctx context.Context, barcode string) (*models.UniversalRecord, error)
}

type ProductHandler struct {
	client ProductLookup
	logger *zap.Logger
}

func NewProductHandler(client ProductLookup, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{client: client, logger: logger}
}

// GetProduct handles GET /lookup/:barcode
func (h *ProductHandler) GetProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	record, err := h.client.Lookup(c.Request.Context(), barcode)
	if err != nil {
		h.respondLookupError(c, barcode, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// GetUniversalProduct handles GET /universal-lookup/:barcode
func (h *ProductHandler) GetUniversalProduct(c *gin.Context) {
	barcode := c.Param("barcode")

	record, err := h.client.UniversalLookup(c.Request.Context(), barcode)
	if err != nil {
		h.respondLookupError(c, barcode, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// respondLookupError maps the lookup error taxonomy onto well-formed JSON
// responses; internal failures never propagate as raw faults.
func (h *ProductHandler) respondLookupError(c *gin.Context, barcode string, err error) {
	if errors.Is(err, beautyfacts.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
		return
	}

	var transportErr *beautyfacts.TransportError
	if errors.As(err, &transportErr) {
		h.logger.Error("Product lookup failed upstream", zap.String("barcode", barcode), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Product database unavailable"})
		return
	}

	h.logger.Error("Product lookup failed", zap.String("barcode", barcode), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Lookup failed"})
}
