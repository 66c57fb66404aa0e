// Package postgres implements a quotation store backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Manorajkrishan/Project01/pkg/quote"
)

// Store persists quotation summaries in PostgreSQL, one row per invoice id.
type Store struct {
	db *sql.DB
}

// New creates a PostgreSQL store. The caller must ensure the database has a
// quotations table:
// CREATE TABLE IF NOT EXISTS quotations (id TEXT PRIMARY KEY, created_at TIMESTAMPTZ, items JSONB, total NUMERIC);
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save upserts the summary row, so repeated saves of the same summary are
// idempotent.
func (st *Store) Save(ctx context.Context, s quote.Summary) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return err
	}
	_, err = st.db.ExecContext(ctx,
		"INSERT INTO quotations (id,created_at,items,total) VALUES ($1,$2,$3,$4) ON CONFLICT (id) DO UPDATE SET created_at=$2, items=$3, total=$4",
		s.InvoiceID, s.CreatedAt, items, s.TotalAmount)
	return err
}

// Load retrieves the summary saved under invoiceID.
func (st *Store) Load(ctx context.Context, invoiceID string) (quote.Summary, error) {
	var (
		s     quote.Summary
		items []byte
	)
	err := st.db.QueryRowContext(ctx, "SELECT id,created_at,items,total FROM quotations WHERE id=$1", invoiceID).
		Scan(&s.InvoiceID, &s.CreatedAt, &items, &s.TotalAmount)
	if err == sql.ErrNoRows {
		return quote.Summary{}, quote.ErrNotFound
	}
	if err != nil {
		return quote.Summary{}, err
	}
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return quote.Summary{}, err
	}
	return s, nil
}
