package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"shopmate/internal/domain"
)

func TestLoadAndLookup(t *testing.T) {
	products := []domain.Product{
		{ID: "juh-001", Name: "Juhayna Full Cream Milk 1L", Price: 38.5, Category: "Dairy", Barcode: "6221024000018"},
		{ID: "ita-001", Name: "Italiano Spaghetti 400g", Price: 22.0, Category: "Pantry", Barcode: "6221031200021"},
	}
	raw, _ := json.Marshal(products)
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.List()) != 2 {
		t.Fatalf("want 2 products, got %d", len(c.List()))
	}

	p, ok := c.ByBarcode("6221024000018")
	if !ok || p.ID != "juh-001" {
		t.Fatalf("barcode lookup failed: %+v ok=%v", p, ok)
	}
	if _, ok := c.ByBarcode("0000000000000"); ok {
		t.Fatal("unknown barcode must not resolve")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/products.json"); err == nil {
		t.Fatal("want error for missing catalog file")
	}
}

func TestOffersByCategory(t *testing.T) {
	if got := len(OffersByCategory("all")); got != len(Offers) {
		t.Fatalf("'all' must return every offer, got %d", got)
	}
	for _, o := range OffersByCategory("dairy") {
		if o.Category != "dairy" {
			t.Fatalf("unexpected category %q", o.Category)
		}
	}
	if got := OffersByCategory("nonexistent"); len(got) != 0 {
		t.Fatalf("unknown category must be empty, got %d", len(got))
	}
}
