// Package memory implements an in-memory quotation store.
package memory

import (
	"context"
	"sync"

	"github.com/Manorajkrishan/Project01/pkg/quote"
)

// Store provides an in-memory implementation of quote.Store.
type Store struct {
	mu        sync.RWMutex
	summaries map[string]quote.Summary
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{summaries: make(map[string]quote.Summary)}
}

// Save stores the summary under its invoice id, overwriting any prior
// record.
func (st *Store) Save(ctx context.Context, s quote.Summary) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	items := make([]quote.LineItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	st.summaries[s.InvoiceID] = s
	return nil
}

// Load retrieves the most recently saved summary for the invoice id.
func (st *Store) Load(ctx context.Context, invoiceID string) (quote.Summary, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.summaries[invoiceID]
	if !ok {
		return quote.Summary{}, quote.ErrNotFound
	}
	items := make([]quote.LineItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s, nil
}
