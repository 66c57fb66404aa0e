package catalog

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry as the quotation engine sees it.
type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Specs     string          `json:"specs"`
	UnitPrice decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

// Provider defines behavior for supplying products to the engine.
type Provider interface {
	ListProducts(ctx context.Context) ([]Product, error)
	FindProducts(ctx context.Context, query string) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (Product, error)
	AddProduct(ctx context.Context, p Product) error
}

// ErrNotFound indicates the requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Matches reports whether the product satisfies a search query: a
// case-insensitive substring of name or specs, or the exact numeric id.
func (p Product) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Specs), q) {
		return true
	}
	id, err := strconv.ParseInt(q, 10, 64)
	return err == nil && id == p.ID
}
