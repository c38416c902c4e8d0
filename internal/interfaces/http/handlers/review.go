// internal/interfaces/http/handlers/review.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/printmart/internal/domain/catalog"
	"github.com/your-org/printmart/internal/domain/session"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	catalog *catalog.Catalog
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(cat *catalog.Catalog) *ReviewHandler {
	return &ReviewHandler{
		catalog: cat,
	}
}

// CreateReviewRequest represents a review submission
type CreateReviewRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required"`
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	identity, signedIn := store.Identity()
	if !signedIn {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Sign in required",
		})
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please write a comment",
		})
		return
	}

	if _, found := h.catalog.Find(req.ProductID); !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	review := store.AddReview(session.Review{
		ProductID: req.ProductID,
		Reviewer:  identity.Name,
		Rating:    req.Rating,
		Comment:   comment,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"data":    review,
	})
}

// GetReviews handles GET /reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	reviews := store.Reviews()

	c.JSON(http.StatusOK, gin.H{
		"message": "Reviews retrieved successfully",
		"data":    reviews,
		"total":   len(reviews),
	})
}
