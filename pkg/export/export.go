// Package export turns quotation summaries into shareable documents and
// hands them off to delivery channels. It owns no cart state.
package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Manorajkrishan/Project01/pkg/quote"
)

// Document is an opaque rendered artifact, named Quotation_<invoiceId>.<ext>.
type Document struct {
	Name string
	Data []byte
}

// ErrRender indicates document generation failed. Rendering touches neither
// ledger nor store state, so a retry is always safe.
var ErrRender = errors.New("export: document render failed")

// Renderer produces a visual document from a complete, self-contained
// summary. Page size and layout are the renderer's business alone.
type Renderer interface {
	Render(ctx context.Context, s quote.Summary) (Document, error)
}

// Sharer delivers a document over some external channel. Delivery is the
// channel's concern; the engine never waits on it.
type Sharer interface {
	Share(ctx context.Context, doc Document) error
}

// Coordinator renders summaries and dispatches documents.
type Coordinator struct {
	renderer Renderer
	sharer   Sharer
	log      *zap.Logger
}

// New creates a coordinator. A nil sharer makes Dispatch a no-op.
func New(renderer Renderer, sharer Sharer, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{renderer: renderer, sharer: sharer, log: log}
}

// ToDocument renders the summary. Failures come back wrapped in ErrRender.
func (c *Coordinator) ToDocument(ctx context.Context, s quote.Summary) (Document, error) {
	doc, err := c.renderer.Render(ctx, s)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return doc, nil
}

// Dispatch hands the document to the sharer and returns immediately. The
// delivery runs detached from the caller's context, so an abandoned caller
// cannot cancel it halfway, and its outcome is only logged.
func (c *Coordinator) Dispatch(doc Document) {
	if c.sharer == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := c.sharer.Share(ctx, doc); err != nil {
			c.log.Warn("share dispatch failed", zap.String("document", doc.Name), zap.Error(err))
			return
		}
		c.log.Info("document dispatched", zap.String("document", doc.Name))
	}()
}

// DocumentName builds the conventional artifact name for an invoice id.
func DocumentName(invoiceID, ext string) string {
	return fmt.Sprintf("Quotation_%s.%s", invoiceID, ext)
}

// NopSharer discards documents; it stands in where no channel is wired.
type NopSharer struct{}

// Share implements Sharer.
func (NopSharer) Share(ctx context.Context, doc Document) error { return nil }
