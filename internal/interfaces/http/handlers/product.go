// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/printmart/internal/domain/catalog"
	"github.com/your-org/printmart/internal/domain/session"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalog *catalog.Catalog
}

// NewProductHandler creates a new product handler
func NewProductHandler(cat *catalog.Catalog) *ProductHandler {
	return &ProductHandler{
		catalog: cat,
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var query catalog.Query
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	products := h.catalog.Filter(query)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
		"total":   len(products),
	})
}

// GetOptions handles GET /products/options
func (h *ProductHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Options retrieved successfully",
		"data": gin.H{
			"categories": catalog.Categories(),
			"materials":  catalog.Materials(),
			"sort":       catalog.SortOptions(),
			"shipping":   session.ShippingMethods(),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	product, found := h.catalog.Find(productID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetProductReviews handles GET /products/:id/reviews
func (h *ProductHandler) GetProductReviews(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	if _, found := h.catalog.Find(productID); !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	reviews := store.ProductReviews(productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Reviews retrieved successfully",
		"data":    reviews,
		"total":   len(reviews),
	})
}

func parseProductID(c *gin.Context) (int, bool) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return 0, false
	}
	return productID, true
}
