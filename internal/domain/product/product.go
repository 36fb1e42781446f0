package product

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kailas-cloud/shopassist/internal/domain"
)

// idNamespace scopes the name-derived product IDs.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("shopassist:product"))

// Product is a catalog item (immutable value object).
type Product struct {
	name        string
	category    string
	description string
	price       float64
}

// New validates and creates a Product.
func New(name, category, description string, price float64) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, fmt.Errorf("name is required: %w", domain.ErrInvalidProduct)
	}
	if strings.TrimSpace(description) == "" {
		return Product{}, fmt.Errorf("product %q: description is required: %w", name, domain.ErrInvalidProduct)
	}
	if price < 0 {
		return Product{}, fmt.Errorf("product %q: negative price %v: %w", name, price, domain.ErrInvalidProduct)
	}
	return Product{
		name:        name,
		category:    strings.TrimSpace(category),
		description: description,
		price:       price,
	}, nil
}

// MustNew calls New and panics on error. Used for the built-in catalog.
func MustNew(name, category, description string, price float64) Product {
	p, err := New(name, category, description, price)
	if err != nil {
		panic(err)
	}
	return p
}

// ID returns a stable identifier derived from the product name.
func (p Product) ID() string {
	return uuid.NewSHA1(idNamespace, []byte(p.name)).String()
}

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Category returns the product category.
func (p Product) Category() string { return p.category }

// Description returns the product description (the embedded text).
func (p Product) Description() string { return p.description }

// Price returns the unit price.
func (p Product) Price() float64 { return p.price }
