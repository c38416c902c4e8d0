// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the immutable, ordered product list shared by every session
type Catalog struct {
	products []Product
	index    map[int]int
}

// New builds a catalog from products, rejecting non-positive or duplicate
// ids and negative prices.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[int]int, len(products)),
	}

	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %q: id must be positive, got %d", p.Name, p.ID)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("product %q: duplicate id %d", p.Name, p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %d: price cannot be negative", p.ID)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p.clone())
	}

	return c, nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(DefaultProducts())
	if err != nil {
		panic(err)
	}
	return c
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// LoadFile reads a YAML catalog file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog file %s has no products", path)
	}

	c, err := New(file.Products)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return c, nil
}

// Find returns the product with the given id
func (c *Catalog) Find(id int) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i].clone(), true
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// All returns every product in catalog order
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.clone()
	}
	return out
}

// Filter applies the search, category and material filters and sorts the
// result. Unknown sort orders fall back to popularity. A blank search
// matches everything; otherwise the search text is matched as typed,
// surrounding spaces included.
func (c *Catalog) Filter(q Query) []Product {
	search := strings.ToLower(q.Search)
	searching := strings.TrimSpace(search) != ""

	result := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if searching &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Material != "" && p.Material != q.Material {
			continue
		}
		result = append(result, p.clone())
	}

	var less func(a, b Product) bool
	switch q.Sort {
	case SortPriceAsc:
		less = func(a, b Product) bool { return a.Price.LessThan(b.Price) }
	case SortPriceDesc:
		less = func(a, b Product) bool { return a.Price.GreaterThan(b.Price) }
	case SortNewest:
		less = func(a, b Product) bool { return a.ID > b.ID }
	default:
		less = func(a, b Product) bool { return a.ReviewCount > b.ReviewCount }
	}
	sort.SliceStable(result, func(i, j int) bool { return less(result[i], result[j]) })

	return result
}
