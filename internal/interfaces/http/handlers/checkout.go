// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/printmart/internal/domain/session"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct{}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler() *CheckoutHandler {
	return &CheckoutHandler{}
}

// CheckoutRequest is the shipping form submitted at checkout
type CheckoutRequest struct {
	Email          string `json:"email" binding:"required,email"`
	FullName       string `json:"full_name" binding:"required"`
	Addr1          string `json:"addr1" binding:"required"`
	Addr2          string `json:"addr2"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state"`
	Zip            string `json:"zip" binding:"required"`
	ShippingMethod string `json:"shipping_method"`
}

// SummaryResponse is an order summary with fixed two-decimal amounts
type SummaryResponse struct {
	ShippingMethod string `json:"shipping_method"`
	SubTotal       string `json:"sub_total"`
	ShippingCost   string `json:"shipping_cost"`
	TaxAmount      string `json:"tax_amount"`
	TotalAmount    string `json:"total_amount"`
}

func newSummaryResponse(method string, summary session.OrderSummary) SummaryResponse {
	return SummaryResponse{
		ShippingMethod: method,
		SubTotal:       summary.Subtotal.StringFixed(2),
		ShippingCost:   summary.Shipping.StringFixed(2),
		TaxAmount:      summary.Tax.StringFixed(2),
		TotalAmount:    summary.Total.StringFixed(2),
	}
}

// GetShippingMethods handles GET /checkout/shipping-methods
func (h *CheckoutHandler) GetShippingMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Shipping methods retrieved successfully",
		"data":    session.ShippingMethods(),
	})
}

// GetCheckoutSummary handles GET /checkout/summary
func (h *CheckoutHandler) GetCheckoutSummary(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	method := c.DefaultQuery("shipping", session.DefaultShippingMethod)
	summary, ok := store.Summary(method)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown shipping method",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    newSummaryResponse(method, summary),
	})
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	info := session.ShippingInfo{
		Email:    strings.TrimSpace(req.Email),
		FullName: strings.TrimSpace(req.FullName),
		Addr1:    strings.TrimSpace(req.Addr1),
		Addr2:    strings.TrimSpace(req.Addr2),
		City:     strings.TrimSpace(req.City),
		State:    strings.TrimSpace(req.State),
		Zip:      strings.TrimSpace(req.Zip),
		Method:   strings.TrimSpace(req.ShippingMethod),
	}
	if info.FullName == "" || info.Addr1 == "" || info.City == "" || info.Zip == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Please complete the shipping form",
		})
		return
	}
	if info.Method == "" {
		info.Method = session.DefaultShippingMethod
	}

	order, summary, err := store.Checkout(info)
	switch {
	case errors.Is(err, session.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Your cart is empty",
		})
		return
	case errors.Is(err, session.ErrUnknownShipping):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown shipping method",
		})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data": gin.H{
			"order":   order,
			"summary": newSummaryResponse(info.Method, summary),
		},
	})
}
