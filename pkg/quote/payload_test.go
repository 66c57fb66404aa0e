package quote

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testSummary() Summary {
	return Summary{
		InvoiceID: "INV-AB12C-1700000000000",
		CreatedAt: time.Date(2024, 11, 14, 9, 30, 0, 0, time.UTC),
		Items: []LineItem{
			{ProductID: 5, Name: "RAM", Brand: "Corsair", Specs: "4GB, DDR4", UnitPrice: decimal.NewFromInt(40), Quantity: 2},
			{ProductID: 2, Name: "Keyboard", Brand: "Logitech", Specs: "Mechanical", UnitPrice: decimal.NewFromInt(100), Quantity: 1},
		},
		TotalAmount: decimal.RequireFromString("180.00"),
	}
}

func TestSharePayloadRoundTrip(t *testing.T) {
	s := testSummary()
	payload, err := SharePayload(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := ParseSharePayload(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Equal(s) {
		t.Fatalf("round trip lost data:\n want %+v\n got  %+v", s, got)
	}
}

func TestSharePayloadDeterministic(t *testing.T) {
	s := testSummary()
	a, err := SharePayload(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	b, err := SharePayload(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if a != b {
		t.Fatal("payloads differ between calls on an equal summary")
	}
}

func TestSharePayloadKeyOrder(t *testing.T) {
	payload, err := SharePayload(testSummary())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	keys := []string{`"invoiceNumber"`, `"dateTime"`, `"products"`, `"totalAmount"`}
	last := -1
	for _, k := range keys {
		i := strings.Index(payload, k)
		if i < 0 {
			t.Fatalf("payload missing key %s: %s", k, payload)
		}
		if i < last {
			t.Fatalf("key %s out of order in payload: %s", k, payload)
		}
		last = i
	}
}

func TestParseSharePayloadRejectsGarbage(t *testing.T) {
	if _, err := ParseSharePayload("not json"); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
