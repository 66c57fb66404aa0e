// Package memory implements an in-memory catalog provider.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Manorajkrishan/Project01/pkg/catalog"
)

// Provider holds products in memory in insertion order.
type Provider struct {
	mu       sync.RWMutex
	products []catalog.Product
}

// New creates an empty in-memory provider.
func New() *Provider {
	return &Provider{}
}

// NewSeeded creates a provider loaded with the demo computer-parts catalog.
func NewSeeded() *Provider {
	p := New()
	p.products = []catalog.Product{
		{ID: 1, Name: "Laptop", Brand: "Dell", Specs: "8GB RAM, 256GB SSD", UnitPrice: decimal.NewFromInt(1000), Available: true},
		{ID: 2, Name: "Keyboard", Brand: "Logitech", Specs: "Mechanical", UnitPrice: decimal.NewFromInt(100), Available: true},
		{ID: 3, Name: "Mouse", Brand: "HP", Specs: "Wireless", UnitPrice: decimal.NewFromInt(50), Available: false},
		{ID: 4, Name: "Monitor", Brand: "Samsung", Specs: "27 inch, 1080p", UnitPrice: decimal.NewFromInt(300), Available: true},
		{ID: 5, Name: "RAM", Brand: "Corsair", Specs: "4GB, DDR4", UnitPrice: decimal.NewFromInt(40), Available: true},
		{ID: 6, Name: "RAM", Brand: "Kingston", Specs: "4GB, DDR3", UnitPrice: decimal.NewFromInt(35), Available: true},
		{ID: 7, Name: "RAM", Brand: "Crucial", Specs: "8GB, DDR4", UnitPrice: decimal.NewFromInt(70), Available: true},
	}
	return p
}

// ListProducts returns all products.
func (p *Provider) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]catalog.Product, len(p.products))
	copy(out, p.products)
	return out, nil
}

// FindProducts returns products matching the query.
func (p *Provider) FindProducts(ctx context.Context, query string) ([]catalog.Product, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []catalog.Product
	for _, prod := range p.products {
		if prod.Matches(query) {
			out = append(out, prod)
		}
	}
	return out, nil
}

// GetProduct retrieves a product by id.
func (p *Provider) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, prod := range p.products {
		if prod.ID == id {
			return prod, nil
		}
	}
	return catalog.Product{}, catalog.ErrNotFound
}

// AddProduct appends a product, replacing any existing entry with the same id.
func (p *Provider) AddProduct(ctx context.Context, prod catalog.Product) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, existing := range p.products {
		if existing.ID == prod.ID {
			p.products[i] = prod
			return nil
		}
	}
	p.products = append(p.products, prod)
	return nil
}
