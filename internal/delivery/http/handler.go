package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shofit/backend/internal/domain"
	"github.com/shofit/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	extraction     *usecase.ExtractionService
	recommendation *usecase.RecommendationService
	products       domain.ProductRepository
	aiConfigured   bool
}

// NewHandler creates a new HTTP handler
func NewHandler(extraction *usecase.ExtractionService, recommendation *usecase.RecommendationService, products domain.ProductRepository, aiConfigured bool) *Handler {
	return &Handler{
		extraction:     extraction,
		recommendation: recommendation,
		products:       products,
		aiConfigured:   aiConfigured,
	}
}

// Root returns basic service information
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ShoFit API",
		"version": "1.0.0",
	})
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"ai_configured": h.aiConfigured,
	})
}

// ExtractSizeChart fetches a product page and extracts its size chart.
// Fetch failures are reported in the result body, not as HTTP errors.
func (h *Handler) ExtractSizeChart(c *gin.Context) {
	var req domain.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "URL is required",
		})
		return
	}

	result := h.extraction.Extract(c.Request.Context(), req.URL)
	c.JSON(http.StatusOK, result)
}

// RecommendSize produces a size recommendation from measurements and a chart
func (h *Handler) RecommendSize(c *gin.Context) {
	var req domain.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if req.Measurements == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Measurements are required",
		})
		return
	}

	if len(req.SizeChart.Rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Valid size chart is required",
		})
		return
	}

	rec := h.recommendation.Recommend(c.Request.Context(), *req.Measurements, req.SizeChart)
	c.JSON(http.StatusOK, rec)
}

// Analyze chains extraction and recommendation for a product URL
func (h *Handler) Analyze(c *gin.Context) {
	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "URL is required",
		})
		return
	}

	if req.Measurements == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Measurements are required",
		})
		return
	}

	scrape := h.extraction.Extract(c.Request.Context(), req.URL)
	if !scrape.Success || scrape.SizeChart.IsEmpty() {
		c.JSON(http.StatusOK, domain.AnalyzeResult{
			Success:      false,
			ScrapeResult: scrape,
			Error:        "Could not extract size chart from the URL",
		})
		return
	}

	rec := h.recommendation.Recommend(c.Request.Context(), *req.Measurements, scrape.SizeChart)
	c.JSON(http.StatusOK, domain.AnalyzeResult{
		Success:        true,
		ScrapeResult:   scrape,
		Recommendation: &rec,
	})
}

// ListProducts returns catalog products matching the query filters
func (h *Handler) ListProducts(c *gin.Context) {
	filter := domain.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid min_price",
			})
			return
		}
		filter.MinPrice = &v
	}

	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid max_price",
			})
			return
		}
		filter.MaxPrice = &v
	}

	products, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to list products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}

// GetProduct returns a single catalog product by id
func (h *Handler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Product with id '" + id + "' not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}
