// internal/domain/session/entity.go
package session

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/printmart/internal/domain/catalog"
)

// CartEntry is one product pending purchase. Quantity is always >= 1.
type CartEntry struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// LineItem is a cart entry joined with its catalog product.
// Product is nil when the id no longer resolves.
type LineItem struct {
	ProductID int              `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Product   *catalog.Product `json:"product,omitempty"`
}

// Name returns the product name, or "" when the product is missing
func (li LineItem) Name() string {
	if li.Product == nil {
		return ""
	}
	return li.Product.Name
}

// LineTotal returns price * quantity, zero when the product is missing
func (li LineItem) LineTotal() decimal.Decimal {
	if li.Product == nil {
		return decimal.Zero
	}
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Review is a product review
type Review struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Reviewer  string `json:"reviewer"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusCompleted  OrderStatus = "Completed"
)

// Order is an immutable entry of the order history
type Order struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Status OrderStatus `json:"status"`
	Items  string      `json:"items"`
}

// Identity is the signed-in shopper
type Identity struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	PreferredMaterial string `json:"preferred_material"`
	Notifications     string `json:"notifications"`
}

// ProfileUpdate carries the identity fields a shopper may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	PreferredMaterial *string `json:"preferred_material"`
	Notifications     *string `json:"notifications"`
}

// ShippingInfo is the checkout form content
type ShippingInfo struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Addr1    string `json:"addr1"`
	Addr2    string `json:"addr2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Method   string `json:"shipping_method"`
}
