// Package catalog loads product catalogs from YAML files.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/shopassist/internal/domain/product"
)

// ErrEmptyCatalog signals a catalog file without products.
var ErrEmptyCatalog = errors.New("catalog has no products")

type fileDTO struct {
	Products []productDTO `yaml:"products"`
}

type productDTO struct {
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
}

// File reads products from a YAML file of the form:
//
//	products:
//	  - name: Chicken Breast
//	    category: Meat
//	    description: Boneless skinless chicken breast
//	    price: 5.99
type File struct {
	path string
}

// NewFile creates a file-backed catalog.
func NewFile(path string) *File {
	return &File{path: path}
}

// Products loads and validates every product in the file. Duplicate names are rejected
// because product identity is derived from the name.
func (f *File) Products() ([]product.Product, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", f.path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) ([]product.Product, error) {
	var dto fileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(dto.Products) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(dto.Products))
	products := make([]product.Product, 0, len(dto.Products))
	for i, d := range dto.Products {
		p, err := product.New(d.Name, d.Category, d.Description, d.Price)
		if err != nil {
			return nil, fmt.Errorf("product #%d: %w", i+1, err)
		}
		if seen[p.Name()] {
			return nil, fmt.Errorf("product #%d: duplicate name %q", i+1, p.Name())
		}
		seen[p.Name()] = true
		products = append(products, p)
	}
	return products, nil
}

// Static serves a fixed product list.
type Static []product.Product

// Products returns the fixed list.
func (s Static) Products() ([]product.Product, error) {
	return s, nil
}
