package product

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/shopassist/internal/domain"
)

func TestNew_Valid(t *testing.T) {
	p, err := New("  Garlic ", "Produce", "Fresh garlic bulbs for seasoning.", 0.99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "Garlic" {
		t.Errorf("Name() = %q, want trimmed name", p.Name())
	}
	if p.Category() != "Produce" {
		t.Errorf("Category() = %q", p.Category())
	}
	if p.Price() != 0.99 {
		t.Errorf("Price() = %v", p.Price())
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		pname       string
		description string
		price       float64
	}{
		{"empty name", "", "desc", 1},
		{"blank name", "   ", "desc", 1},
		{"empty description", "Garlic", "", 1},
		{"negative price", "Garlic", "desc", -0.01},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.pname, "Produce", tc.description, tc.price)
			if !errors.Is(err, domain.ErrInvalidProduct) {
				t.Errorf("expected ErrInvalidProduct, got %v", err)
			}
		})
	}
}

func TestID_StableAndDistinct(t *testing.T) {
	a := MustNew("Garlic", "Produce", "x", 1)
	b := MustNew("Garlic", "Spices", "y", 2)
	c := MustNew("Ginger", "Produce", "x", 1)

	if a.ID() != b.ID() {
		t.Errorf("same name must give same ID: %s vs %s", a.ID(), b.ID())
	}
	if a.ID() == c.ID() {
		t.Error("different names must give different IDs")
	}
}

func TestDefaultCatalog(t *testing.T) {
	items := DefaultCatalog()
	if len(items) != 9 {
		t.Fatalf("expected 9 products, got %d", len(items))
	}

	allowed := map[string]bool{
		"Meat": true, "Produce": true, "Spices": true, "Canned Goods": true, "Grains": true,
	}
	seen := make(map[string]bool)
	for _, p := range items {
		if !allowed[p.Category()] {
			t.Errorf("unexpected category %q for %q", p.Category(), p.Name())
		}
		if seen[p.ID()] {
			t.Errorf("duplicate ID for %q", p.Name())
		}
		seen[p.ID()] = true
	}
}

func TestNewDocument(t *testing.T) {
	p := MustNew("Onion", "Produce", "Yellow onions.", 0.79)
	emb := []float32{1, 2, 3, 4, 5, 6}

	doc, err := NewDocument(p, emb, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := doc.Fields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 partition fields, got %d", len(fields))
	}
	if got := fields["vector_part_1"]; len(got) != 3 || got[0] != 1 {
		t.Errorf("vector_part_1 = %v", got)
	}
	if got := fields["vector_part_2"]; len(got) != 3 || got[0] != 4 {
		t.Errorf("vector_part_2 = %v", got)
	}
}

func TestNewDocument_InvalidParts(t *testing.T) {
	p := MustNew("Onion", "Produce", "Yellow onions.", 0.79)
	if _, err := NewDocument(p, []float32{1, 2}, 0); err == nil {
		t.Fatal("expected error for zero partitions")
	}
}
