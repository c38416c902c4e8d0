// internal/domain/catalog/entity.go
package catalog

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog product
type Product struct {
	ID              int             `yaml:"id" json:"id"`
	Name            string          `yaml:"name" json:"name"`
	Material        string          `yaml:"material" json:"material"`
	Category        string          `yaml:"category" json:"category"`
	Rating          float64         `yaml:"rating" json:"rating"`
	ReviewCount     int             `yaml:"review_count" json:"review_count"`
	Stock           string          `yaml:"stock" json:"stock"`
	Price           decimal.Decimal `yaml:"price" json:"price"`
	Description     string          `yaml:"description" json:"description"`
	LongDescription string          `yaml:"long_description" json:"long_description"`
	Specs           []Spec          `yaml:"specs" json:"specs"`
	Variant         string          `yaml:"variant" json:"variant"`
}

// Spec is one label/value row of a product's specification table
type Spec struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Option is a selectable value with its display label
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SortOrder selects how Filter orders its results
type SortOrder string

const (
	SortPopular   SortOrder = "popular"
	SortNewest    SortOrder = "new"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// Query describes a catalog search
type Query struct {
	Search   string    `form:"q"`
	Category string    `form:"category"`
	Material string    `form:"material"`
	Sort     SortOrder `form:"sort"`
}

func (p Product) clone() Product {
	if p.Specs != nil {
		specs := make([]Spec, len(p.Specs))
		copy(specs, p.Specs)
		p.Specs = specs
	}
	return p
}
