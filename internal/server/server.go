package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/handler"
	"github.com/muhammad-dz/cosmetic-safety-scanner-app/internal/scan"
)

// Deps are the collaborators the HTTP surface is wired with.
type Deps struct {
	Products  handler.ProductLookup
	Summaries handler.SummarySource
	Extractor scan.TextExtractor
	Scorer    scan.HazardScorer
}

// NewRouter constructs the Gin engine with all routes registered.
func NewRouter(deps Deps, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	productHandler := handler.NewProductHandler(deps.Products, logger)
	sentimentHandler := handler.NewSentimentHandler(deps.Summaries, logger)
	scanHandler := handler.NewScanHandler(deps.Extractor, deps.Scorer, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/lookup/:barcode", productHandler.GetProduct)
	router.GET("/universal-lookup/:barcode", productHandler.GetUniversalProduct)

	api := router.Group("/api")
	{
		api.GET("/sentiment/summary", sentimentHandler.GetSummary)
		api.GET("/sentiment/health", sentimentHandler.Health)
		api.POST("/ocr/extract-text", scanHandler.ExtractText)
		api.POST("/ingredients/batch-check", scanHandler.BatchCheck)
	}

	return router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
