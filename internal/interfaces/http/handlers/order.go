// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles order history endpoints
type OrderHandler struct{}

// NewOrderHandler creates a new order handler
func NewOrderHandler() *OrderHandler {
	return &OrderHandler{}
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	orders := store.Orders()

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
		"total":   len(orders),
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	id := c.Param("id")
	for _, order := range store.Orders() {
		if order.ID == id {
			c.JSON(http.StatusOK, gin.H{
				"message": "Order retrieved successfully",
				"data":    order,
			})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{
		"error": "Order not found",
	})
}
