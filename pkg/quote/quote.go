// Package quote implements the quotation cart engine: a ledger of selected
// line items for one invoice, its derived summary, and the persistence
// boundary that keeps the summary durable per invoice id.
package quote

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Manorajkrishan/Project01/pkg/catalog"
)

// LineItem is one product entry in a quotation. Price, brand and specs are
// snapshots taken when the product was added; later catalog changes do not
// touch existing lines.
type LineItem struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Specs     string          `json:"specs"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Summary is an immutable snapshot of a quotation. Field order doubles as
// the key order of the share payload, so it must not be reordered.
type Summary struct {
	InvoiceID   string          `json:"invoiceNumber"`
	CreatedAt   time.Time       `json:"dateTime"`
	Items       []LineItem      `json:"products"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Store defines behavior for persisting quotation summaries keyed by
// invoice id. Save overwrites any prior record under the same key.
type Store interface {
	Save(ctx context.Context, s Summary) error
	Load(ctx context.Context, invoiceID string) (Summary, error)
}

var (
	// ErrNotFound indicates the referenced product or invoice id is absent
	// from the ledger or store.
	ErrNotFound = errors.New("quotation: not found")

	// ErrUnavailable indicates an attempt to add a product that is not
	// available; the ledger is left unchanged.
	ErrUnavailable = errors.New("quotation: product not available")
)

// Subtotal returns unit price times quantity for the line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Equal reports whether two summaries carry the same invoice id, creation
// time, items and total.
func (s Summary) Equal(o Summary) bool {
	if s.InvoiceID != o.InvoiceID || !s.CreatedAt.Equal(o.CreatedAt) || len(s.Items) != len(o.Items) {
		return false
	}
	if !s.TotalAmount.Equal(o.TotalAmount) {
		return false
	}
	for i, li := range s.Items {
		other := o.Items[i]
		if li.ProductID != other.ProductID || li.Name != other.Name || li.Brand != other.Brand ||
			li.Specs != other.Specs || li.Quantity != other.Quantity || !li.UnitPrice.Equal(other.UnitPrice) {
			return false
		}
	}
	return true
}

// snapshot builds a line item from a catalog product at quantity 1.
func snapshot(p catalog.Product) LineItem {
	return LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Specs:     p.Specs,
		UnitPrice: p.UnitPrice,
		Quantity:  1,
	}
}
