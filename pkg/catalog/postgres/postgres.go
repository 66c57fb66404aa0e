// Package postgres implements a catalog provider backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/Manorajkrishan/Project01/pkg/catalog"
)

// Provider reads and writes products in PostgreSQL.
type Provider struct {
	db *sql.DB
}

// New creates a PostgreSQL provider. The caller must ensure the database
// has a products table:
// CREATE TABLE IF NOT EXISTS products (id BIGINT PRIMARY KEY, name TEXT, brand TEXT, specs TEXT, price NUMERIC, available BOOLEAN);
func New(db *sql.DB) *Provider {
	return &Provider{db: db}
}

// ListProducts fetches all products ordered by id.
func (p *Provider) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	rows, err := p.db.QueryContext(ctx, "SELECT id,name,brand,specs,price,available FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// FindProducts matches a case-insensitive substring of name or specs, or an
// exact id when the query is numeric.
func (p *Provider) FindProducts(ctx context.Context, query string) ([]catalog.Product, error) {
	id, numErr := strconv.ParseInt(query, 10, 64)
	if numErr != nil {
		id = -1
	}
	rows, err := p.db.QueryContext(ctx,
		"SELECT id,name,brand,specs,price,available FROM products WHERE name ILIKE '%'||$1||'%' OR specs ILIKE '%'||$1||'%' OR id=$2 ORDER BY id",
		query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// GetProduct retrieves a product by id.
func (p *Provider) GetProduct(ctx context.Context, id int64) (catalog.Product, error) {
	var prod catalog.Product
	err := p.db.QueryRowContext(ctx, "SELECT id,name,brand,specs,price,available FROM products WHERE id=$1", id).
		Scan(&prod.ID, &prod.Name, &prod.Brand, &prod.Specs, &prod.UnitPrice, &prod.Available)
	if err == sql.ErrNoRows {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return prod, err
}

// AddProduct upserts a product row.
func (p *Provider) AddProduct(ctx context.Context, prod catalog.Product) error {
	_, err := p.db.ExecContext(ctx,
		"INSERT INTO products (id,name,brand,specs,price,available) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (id) DO UPDATE SET name=$2, brand=$3, specs=$4, price=$5, available=$6",
		prod.ID, prod.Name, prod.Brand, prod.Specs, prod.UnitPrice, prod.Available)
	return err
}

func scanProducts(rows *sql.Rows) ([]catalog.Product, error) {
	var products []catalog.Product
	for rows.Next() {
		var prod catalog.Product
		if err := rows.Scan(&prod.ID, &prod.Name, &prod.Brand, &prod.Specs, &prod.UnitPrice, &prod.Available); err != nil {
			return nil, err
		}
		products = append(products, prod)
	}
	return products, rows.Err()
}
