package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Manorajkrishan/Project01/pkg/quote"
)

func sampleSummary() quote.Summary {
	return quote.Summary{
		InvoiceID: "INV-TEST1-1",
		CreatedAt: time.Date(2024, 11, 14, 9, 30, 0, 0, time.UTC),
		Items: []quote.LineItem{
			{ProductID: 5, Name: "RAM", Brand: "Corsair", Specs: "4GB, DDR4", UnitPrice: decimal.NewFromInt(40), Quantity: 2},
		},
		TotalAmount: decimal.NewFromInt(80),
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	st := New()
	s := sampleSummary()

	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Load(ctx, s.InvoiceID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Equal(s) {
		t.Fatalf("loaded summary differs: %+v", got)
	}
}

func TestSaveIdempotent(t *testing.T) {
	ctx := context.Background()
	st := New()
	s := sampleSummary()

	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := st.Load(ctx, s.InvoiceID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Equal(s) {
		t.Fatal("repeated save changed the stored summary")
	}
}

func TestLoadUnknownID(t *testing.T) {
	st := New()
	if _, err := st.Load(context.Background(), "INV-NOPE-0"); !errors.Is(err, quote.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	st := New()
	s := sampleSummary()
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.Load(ctx, s.InvoiceID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got.Items[0].Quantity = 99

	again, err := st.Load(ctx, s.InvoiceID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Items[0].Quantity != 2 {
		t.Fatal("caller mutation leaked into the store")
	}
}
