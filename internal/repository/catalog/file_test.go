package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
)

const sampleYAML = `
products:
  - name: Chicken Breast
    category: Meat
    description: Boneless skinless chicken breast
    price: 5.99
  - name: Garlic
    category: Vegetables
    description: Fresh garlic bulbs
    price: 0.5
`

func TestParse(t *testing.T) {
	products, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name() != "Chicken Breast" || products[0].Price() != 5.99 {
		t.Errorf("unexpected product: %+v", products[0])
	}
	if products[1].Category() != "Vegetables" {
		t.Errorf("category = %q", products[1].Category())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "products: []"},
		{"malformed", "products: [:"},
		{"invalid product", "products:\n  - name: X\n    description: ''\n    price: 1"},
		{"negative price", "products:\n  - name: X\n    description: d\n    price: -1"},
		{"duplicate", "products:\n  - {name: X, description: d, price: 1}\n  - {name: X, description: e, price: 2}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParse_InvalidProductWrapsSentinel(t *testing.T) {
	_, err := Parse([]byte("products:\n  - name: ''\n    description: d\n    price: 1"))
	if !errors.Is(err, domain.ErrInvalidProduct) {
		t.Errorf("expected ErrInvalidProduct, got %v", err)
	}
}

func TestFile_Products(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	products, err := NewFile(path).Products()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}
}

func TestFile_Missing(t *testing.T) {
	if _, err := NewFile(filepath.Join(t.TempDir(), "nope.yaml")).Products(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStatic(t *testing.T) {
	products, err := Static(product.DefaultCatalog()).Products()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 9 {
		t.Errorf("expected 9 products, got %d", len(products))
	}
}
