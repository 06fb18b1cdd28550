package catalog

import (
	"errors"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/models"
)

var ErrNotFound = errors.New("product not found")

// Catalog is the fixed set of purchasable products. It is seeded once at
// startup and never mutated, so reads need no locking.
type Catalog struct {
	products []models.Product
}

// New returns the catalog pre-seeded with the demo storefront products.
func New() *Catalog {
	return &Catalog{products: []models.Product{
		{
			ID:          "1",
			Name:        "Laptop",
			Price:       999.99,
			Description: "High-performance laptop with 16GB RAM and 512GB SSD.",
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853",
		},
		{
			ID:          "2",
			Name:        "Smartphone",
			Price:       499.99,
			Description: "Latest smartphone with 5G support and 128GB storage.",
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897208",
		},
		{
			ID:          "3",
			Name:        "Headphones",
			Price:       79.99,
			Description: "Wireless noise-cancelling headphones.",
			Image:       "https://images.unsplash.com/photo-1505740106531-4243f3831145",
		},
	}}
}

// List returns every product in seed order.
func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks a product up by id.
func (c *Catalog) Get(id string) (models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}
