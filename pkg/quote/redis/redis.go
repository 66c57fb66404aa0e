// Package redis implements a quotation store on Redis.
package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/Manorajkrishan/Project01/pkg/quote"
)

// Store keeps quotation summaries as JSON values under quotation:<invoiceId>.
type Store struct {
	client *redis.Client
}

// New creates a Redis-backed store.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Save writes the summary, overwriting any prior value for the invoice id.
// Keys do not expire; a quotation stays loadable until deleted out of band.
func (st *Store) Save(ctx context.Context, s quote.Summary) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return st.client.Set(ctx, key(s.InvoiceID), b, 0).Err()
}

// Load retrieves the summary saved under invoiceID.
func (st *Store) Load(ctx context.Context, invoiceID string) (quote.Summary, error) {
	b, err := st.client.Get(ctx, key(invoiceID)).Bytes()
	if err == redis.Nil {
		return quote.Summary{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.Summary{}, err
	}
	var s quote.Summary
	if err := json.Unmarshal(b, &s); err != nil {
		return quote.Summary{}, err
	}
	return s, nil
}

func key(invoiceID string) string {
	return "quotation:" + invoiceID
}
