package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Manorajkrishan/Project01/pkg/catalog"
)

func TestSeededCatalog(t *testing.T) {
	ctx := context.Background()
	p := NewSeeded()

	all, err := p.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 7 {
		t.Fatalf("expected 7 seeded products, got %d", len(all))
	}
}

func TestFindProducts(t *testing.T) {
	ctx := context.Background()
	p := NewSeeded()

	// "ram" matches the three RAM modules by name plus the laptop's specs.
	found, err := p.FindProducts(ctx, "ram")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found) != 4 {
		t.Fatalf("expected 4 matches for 'ram', got %d", len(found))
	}

	// Brands are not searched.
	found, err = p.FindProducts(ctx, "dell")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("brand matched unexpectedly: %+v", found)
	}
}

func TestFindProductsByExactID(t *testing.T) {
	ctx := context.Background()
	p := New()
	for _, prod := range []catalog.Product{
		{ID: 101, Name: "SSD", Brand: "Samsung", Specs: "NVMe", UnitPrice: decimal.NewFromInt(120), Available: true},
		{ID: 202, Name: "HDD", Brand: "Seagate", Specs: "SATA", UnitPrice: decimal.NewFromInt(60), Available: true},
	} {
		if err := p.AddProduct(ctx, prod); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	found, err := p.FindProducts(ctx, "101")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(found) != 1 || found[0].ID != 101 {
		t.Fatalf("expected product 101, got %+v", found)
	}
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()
	p := NewSeeded()

	prod, err := p.GetProduct(ctx, 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if prod.Available {
		t.Fatal("seeded mouse should be unavailable")
	}

	if _, err := p.GetProduct(ctx, 99); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()
	p := New()

	ssd := catalog.Product{ID: 10, Name: "SSD", Brand: "Samsung", Specs: "1TB NVMe", UnitPrice: decimal.NewFromInt(120), Available: true}
	if err := p.AddProduct(ctx, ssd); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := p.GetProduct(ctx, 10)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "SSD" {
		t.Fatalf("unexpected product: %+v", got)
	}

	// Re-adding the same id replaces the entry.
	ssd.UnitPrice = decimal.NewFromInt(99)
	if err := p.AddProduct(ctx, ssd); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	all, err := p.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 product after replace, got %d", len(all))
	}
	if !all[0].UnitPrice.Equal(decimal.NewFromInt(99)) {
		t.Fatalf("price not replaced: %s", all[0].UnitPrice)
	}
}
