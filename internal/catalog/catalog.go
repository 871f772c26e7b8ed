// Package catalog serves the static product lookup used by the scan
// simulator. Products live in a JSON file shipped with the kiosk build; there
// is no product database.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"shopmate/internal/domain"
)

type Catalog struct {
	products  []domain.Product
	byBarcode map[string]domain.Product
}

// Load reads the catalog file once at startup.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return FromProducts(products), nil
}

// FromProducts builds a catalog from an in-memory slice, used by tests.
func FromProducts(products []domain.Product) *Catalog {
	byBarcode := make(map[string]domain.Product, len(products))
	for _, p := range products {
		if p.Barcode != "" {
			byBarcode[p.Barcode] = p
		}
	}
	return &Catalog{products: products, byBarcode: byBarcode}
}

// List returns every product, in file order, for the simulator picker.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByBarcode resolves a scanned code to a product.
func (c *Catalog) ByBarcode(code string) (domain.Product, bool) {
	p, ok := c.byBarcode[code]
	return p, ok
}
