package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Manorajkrishan/Project01/pkg/catalog"
)

// Ledger is the authoritative in-memory state of one quotation. It holds at
// most one line per product id, in insertion order, and writes its summary
// through to the store after every mutation. A Ledger is owned by a single
// actor; concurrent mutation of the same invoice id is not coordinated.
type Ledger struct {
	invoiceID string
	createdAt time.Time
	items     []LineItem
	store     Store
}

// NewLedger starts a fresh quotation with a newly generated invoice id.
func NewLedger(store Store) *Ledger {
	return &Ledger{
		invoiceID: NewInvoiceID(),
		createdAt: time.Now(),
		store:     store,
	}
}

// Restore rebuilds a ledger from the summary saved under invoiceID.
// Returns ErrNotFound if nothing was ever saved for that id.
func Restore(ctx context.Context, store Store, invoiceID string) (*Ledger, error) {
	s, err := store.Load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	l := &Ledger{
		invoiceID: s.InvoiceID,
		createdAt: s.CreatedAt,
		items:     make([]LineItem, len(s.Items)),
		store:     store,
	}
	copy(l.items, s.Items)
	return l, nil
}

// InvoiceID returns the immutable invoice identifier.
func (l *Ledger) InvoiceID() string { return l.invoiceID }

// CreatedAt returns when the quotation was started.
func (l *Ledger) CreatedAt() time.Time { return l.createdAt }

// Items returns a copy of the current line items in insertion order.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// AddItem puts the product on the quotation. A product already present has
// its quantity incremented; a new product is appended at quantity 1 with
// its price, brand and specs snapshotted. Adding an unavailable product
// returns ErrUnavailable and changes nothing.
func (l *Ledger) AddItem(ctx context.Context, p catalog.Product) ([]LineItem, error) {
	if !p.Available {
		return l.Items(), ErrUnavailable
	}
	if i := l.index(p.ID); i >= 0 {
		l.items[i].Quantity++
	} else {
		l.items = append(l.items, snapshot(p))
	}
	return l.Items(), l.persist(ctx)
}

// Increase bumps the quantity of an existing line by one. Returns
// ErrNotFound, without mutating, if the product is not on the quotation.
func (l *Ledger) Increase(ctx context.Context, productID int64) ([]LineItem, error) {
	i := l.index(productID)
	if i < 0 {
		return l.Items(), ErrNotFound
	}
	l.items[i].Quantity++
	return l.Items(), l.persist(ctx)
}

// Decrease lowers the quantity of an existing line by one, removing the
// line when it reaches zero. Returns ErrNotFound if the product is absent,
// so decreasing past removal is observable but harmless.
func (l *Ledger) Decrease(ctx context.Context, productID int64) ([]LineItem, error) {
	i := l.index(productID)
	if i < 0 {
		return l.Items(), ErrNotFound
	}
	l.items[i].Quantity--
	if l.items[i].Quantity <= 0 {
		l.items = append(l.items[:i], l.items[i+1:]...)
	}
	return l.Items(), l.persist(ctx)
}

// Remove deletes the line for productID. Removing an absent product is a
// no-op.
func (l *Ledger) Remove(ctx context.Context, productID int64) ([]LineItem, error) {
	i := l.index(productID)
	if i < 0 {
		return l.Items(), nil
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return l.Items(), l.persist(ctx)
}

// Clear empties the quotation after an export-and-start-new flow. The
// invoice id and creation time are kept; a new invoice needs a new Ledger.
func (l *Ledger) Clear(ctx context.Context) ([]LineItem, error) {
	l.items = nil
	return l.Items(), l.persist(ctx)
}

// Project derives the current summary. It is pure: the total is recomputed
// from the lines on every call and never cached. Totals are rounded to two
// decimal places, half away from zero.
func (l *Ledger) Project() Summary {
	items := l.Items()
	total := decimal.Zero
	for _, li := range items {
		total = total.Add(li.Subtotal())
	}
	return Summary{
		InvoiceID:   l.invoiceID,
		CreatedAt:   l.createdAt,
		Items:       items,
		TotalAmount: total.Round(2),
	}
}

// Save writes the current summary to the store, independent of the
// write-through that follows each mutation.
func (l *Ledger) Save(ctx context.Context) error {
	return l.persist(ctx)
}

// persist is the write-through step. On storage failure the error is
// surfaced wrapped; the mutation stays applied in memory, which remains
// the source of truth until a save succeeds.
func (l *Ledger) persist(ctx context.Context) error {
	if err := l.store.Save(ctx, l.Project()); err != nil {
		return fmt.Errorf("save quotation %s: %w", l.invoiceID, err)
	}
	return nil
}

func (l *Ledger) index(productID int64) int {
	for i, li := range l.items {
		if li.ProductID == productID {
			return i
		}
	}
	return -1
}
