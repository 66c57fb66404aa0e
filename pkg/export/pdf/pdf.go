// Package pdf renders quotation summaries as PDF documents.
package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Manorajkrishan/Project01/pkg/export"
	"github.com/Manorajkrishan/Project01/pkg/quote"
)

// Renderer builds a one-column quotation sheet: header with invoice number,
// date and a QR code of the share payload, then the line-item table and the
// total.
type Renderer struct{}

// New creates a PDF renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render implements export.Renderer.
func (r *Renderer) Render(ctx context.Context, s quote.Summary) (export.Document, error) {
	payload, err := quote.SharePayload(s)
	if err != nil {
		return export.Document{}, err
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Quotation", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(30,
		col.New(8).Add(
			text.New("Invoice No: "+s.InvoiceID, props.Text{Top: 4}),
			text.New(s.CreatedAt.Format("2006-01-02 15:04:05"), props.Text{Top: 10}),
		),
		code.NewQrCol(4, payload, props.Rect{
			Center:  true,
			Percent: 90,
		}),
	)

	m.AddRow(8,
		text.NewCol(4, "Product", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Brand", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Specs", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range s.Items {
		m.AddRow(10,
			text.NewCol(4, item.Name, props.Text{Size: 9}),
			text.NewCol(2, item.Brand, props.Text{Size: 9}),
			text.NewCol(2, item.Specs, props.Text{Size: 9}),
			text.NewCol(2, "$"+item.UnitPrice.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(12,
		col.New(8),
		text.NewCol(4, "Total Amount: $"+s.TotalAmount.StringFixed(2), props.Text{
			Style: fontstyle.Bold,
			Size:  11,
			Align: align.Right,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return export.Document{}, err
	}

	return export.Document{
		Name: export.DocumentName(s.InvoiceID, "pdf"),
		Data: doc.GetBytes(),
	}, nil
}
