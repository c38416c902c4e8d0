// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/printmart/internal/domain/catalog"
	"github.com/your-org/printmart/internal/domain/session"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	catalog *catalog.Catalog
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cat *catalog.Catalog) *CartHandler {
	return &CartHandler{
		catalog: cat,
	}
}

// CartItemResponse represents a cart line with product details
type CartItemResponse struct {
	ProductID int              `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Name      string           `json:"name"`
	UnitPrice string           `json:"unit_price"`
	LineTotal string           `json:"line_total"`
	Product   *catalog.Product `json:"product,omitempty"`
}

// CartTotals represents the priced cart
type CartTotals struct {
	ItemCount      int    `json:"item_count"`     // Number of unique items
	TotalQuantity  int    `json:"total_quantity"` // Sum of all quantities
	ShippingMethod string `json:"shipping_method"`
	SubTotal       string `json:"sub_total"`
	ShippingCost   string `json:"shipping_cost"`
	TaxAmount      string `json:"tax_amount"`
	TotalAmount    string `json:"total_amount"`
}

// CartResponse represents a shopping cart with items and summary
type CartResponse struct {
	Items  []CartItemResponse `json:"items"`
	Totals CartTotals         `json:"totals"`
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	method := c.DefaultQuery("shipping", session.DefaultShippingMethod)
	response, ok := buildCartResponse(store, method)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown shipping method",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    response,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if _, found := h.catalog.Find(req.ProductID); !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	store.AddToCart(req.ProductID)
	h.respondWithCart(c, store, "Item added to cart successfully")
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Quantity must be at least 1; remove the item instead",
			"details": err.Error(),
		})
		return
	}

	if !inCart(store, productID) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in cart",
		})
		return
	}

	store.UpdateQuantity(productID, req.Quantity)
	h.respondWithCart(c, store, "Cart item updated successfully")
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	store.RemoveFromCart(productID)
	h.respondWithCart(c, store, "Item removed from cart successfully")
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store, ok := storeOrAbort(c)
	if !ok {
		return
	}

	store.ClearCart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

func (h *CartHandler) respondWithCart(c *gin.Context, store *session.Store, message string) {
	response, _ := buildCartResponse(store, session.DefaultShippingMethod)

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    response,
	})
}

func inCart(store *session.Store, productID int) bool {
	for _, entry := range store.Cart() {
		if entry.ProductID == productID {
			return true
		}
	}
	return false
}

// buildCartResponse prices the cart from a single snapshot of its items
func buildCartResponse(store *session.Store, shippingMethod string) (*CartResponse, bool) {
	method, ok := session.LookupShipping(shippingMethod)
	if !ok {
		return nil, false
	}

	items := store.CartItems()
	response := &CartResponse{
		Items: make([]CartItemResponse, len(items)),
	}

	subtotal := session.CartTotalOf(items)
	for i, item := range items {
		unitPrice := "0.00"
		if item.Product != nil {
			unitPrice = item.Product.Price.StringFixed(2)
		}
		response.Items[i] = CartItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      item.Name(),
			UnitPrice: unitPrice,
			LineTotal: item.LineTotal().StringFixed(2),
			Product:   item.Product,
		}
		response.Totals.TotalQuantity += item.Quantity
	}

	summary := session.Summarize(subtotal, method.Cost, store.TaxRate())
	response.Totals.ItemCount = len(items)
	response.Totals.ShippingMethod = method.Code
	response.Totals.SubTotal = summary.Subtotal.StringFixed(2)
	response.Totals.ShippingCost = summary.Shipping.StringFixed(2)
	response.Totals.TaxAmount = summary.Tax.StringFixed(2)
	response.Totals.TotalAmount = summary.Total.StringFixed(2)

	return response, true
}
