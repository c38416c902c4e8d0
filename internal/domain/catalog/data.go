package catalog

import "github.com/shopspring/decimal"

// DefaultProducts returns the built-in PrintMart catalog.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:              1,
			Name:            "Modular Desk Organizer",
			Material:        "PLA",
			Category:        "desk",
			Rating:          4.7,
			ReviewCount:     128,
			Stock:           "In stock",
			Price:           decimal.RequireFromString("18.00"),
			Description:     "Stackable trays + pen cup. Ships in 2–3 days.",
			LongDescription: "A modular set of trays you can stack and reconfigure. Great for pens, cables, SD cards, and desk odds and ends.",
			Specs: []Spec{
				{Label: "Dimensions", Value: "180 × 120 × 45 mm (tray)"},
				{Label: "Material", Value: "PLA (multiple colors available)"},
				{Label: "Finish", Value: "Matte, light sanding"},
				{Label: "Lead time", Value: "2–3 business days"},
			},
			Variant: "Charcoal",
		},
		{
			ID:              2,
			Name:            "Articulated Crystal Dragon",
			Material:        "Resin",
			Category:        "decor",
			Rating:          4.9,
			ReviewCount:     64,
			Stock:           "Limited",
			Price:           decimal.RequireFromString("32.00"),
			Description:     "Highly detailed poseable model. Display-ready finish.",
			LongDescription: "A beautifully detailed poseable dragon model with crystal-clear resin finish. Each joint is articulated for dynamic display poses.",
			Specs: []Spec{
				{Label: "Dimensions", Value: "260 × 90 × 110 mm"},
				{Label: "Material", Value: "Resin (clear teal)"},
				{Label: "Finish", Value: "Polished, UV-cured"},
				{Label: "Lead time", Value: "5–7 business days"},
			},
			Variant: "Clear teal",
		},
		{
			ID:              3,
			Name:            "Mechanical Keycap Set (3 pack)",
			Material:        "PETG",
			Category:        "gaming",
			Rating:          4.6,
			ReviewCount:     203,
			Stock:           "New",
			Price:           decimal.RequireFromString("12.00"),
			Description:     "MX-compatible artisan caps. Choose colorway at checkout.",
			LongDescription: "A set of three MX-compatible artisan keycaps, perfect for adding personality to your mechanical keyboard. Available in multiple colorways.",
			Specs: []Spec{
				{Label: "Compatibility", Value: "Cherry MX / clones"},
				{Label: "Material", Value: "PETG (translucent)"},
				{Label: "Finish", Value: "Smooth, dye-sublimated legends"},
				{Label: "Lead time", Value: "1–2 business days"},
			},
			Variant: `"Nebula" mix`,
		},
	}
}

// Categories lists the category filter options. The empty value means all.
func Categories() []Option {
	return []Option{
		{Value: "", Label: "All categories"},
		{Value: "desk", Label: "Desk & organizers"},
		{Value: "decor", Label: "Decor"},
		{Value: "gaming", Label: "Gaming"},
		{Value: "parts", Label: "Replacement parts"},
	}
}

// Materials lists the material filter options. The empty value means any.
func Materials() []Option {
	return []Option{
		{Value: "", Label: "Any"},
		{Value: "PLA", Label: "PLA"},
		{Value: "PETG", Label: "PETG"},
		{Value: "Resin", Label: "Resin"},
	}
}

// SortOptions lists the supported sort orders
func SortOptions() []Option {
	return []Option{
		{Value: string(SortPopular), Label: "Most popular"},
		{Value: string(SortNewest), Label: "Newest"},
		{Value: string(SortPriceAsc), Label: "Price (low → high)"},
		{Value: string(SortPriceDesc), Label: "Price (high → low)"},
	}
}
