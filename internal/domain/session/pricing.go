// internal/domain/session/pricing.go
package session

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the sales tax applied to the cart subtotal
var DefaultTaxRate = decimal.RequireFromString("0.08")

// ShippingMethod is one entry of the checkout shipping menu
type ShippingMethod struct {
	Code  string          `json:"code"`
	Label string          `json:"label"`
	Cost  decimal.Decimal `json:"cost"`
}

const DefaultShippingMethod = "standard"

var shippingMethods = []ShippingMethod{
	{Code: "standard", Label: "Standard (3–5 days)", Cost: decimal.RequireFromString("6.00")},
	{Code: "express", Label: "Express (1–2 days)", Cost: decimal.RequireFromString("14.00")},
	{Code: "pickup", Label: "Local pickup", Cost: decimal.Zero},
}

// ShippingMethods returns the shipping menu in display order
func ShippingMethods() []ShippingMethod {
	out := make([]ShippingMethod, len(shippingMethods))
	copy(out, shippingMethods)
	return out
}

// LookupShipping resolves a shipping method code. An empty code selects
// the standard rate; an unknown code reports false.
func LookupShipping(code string) (ShippingMethod, bool) {
	if code == "" {
		code = DefaultShippingMethod
	}
	for _, m := range shippingMethods {
		if m.Code == code {
			return m, true
		}
	}
	return ShippingMethod{}, false
}

// OrderSummary is the checkout price breakdown
type OrderSummary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Summarize computes tax and total for a subtotal and a flat shipping cost.
// Tax and total are rounded to cents.
func Summarize(subtotal, shipping, taxRate decimal.Decimal) OrderSummary {
	tax := subtotal.Mul(taxRate).Round(2)
	return OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax).Round(2),
	}
}
