package render

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
)

// Result is the outcome of a PDF render. Warnings report degraded output
// (e.g. font fallback) that did not prevent producing a document.
type Result struct {
	PDF      []byte
	Warnings []string
}

// Engine turns an HTML string into a paginated PDF. The production
// implementation drives a headless browser; tests substitute a fake.
type Engine interface {
	PrintHTML(ctx context.Context, html string) ([]byte, error)
}

// ChromeEngine prints through a headless Chrome/Chromium found on PATH.
// Each call spawns its own browser context, so a crashed render never
// poisons the next one.
type ChromeEngine struct {
	Timeout time.Duration
}

func (e *ChromeEngine) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}
	actx, acancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer acancel()
	cctx, ccancel := chromedp.NewContext(actx)
	defer ccancel()

	var pdf []byte
	err := chromedp.Run(cctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// BrowserPDF renders the record's HTML summary and prints it through the
// engine. Engine failures come back as errors for the caller to surface as
// a warning; the record itself is unaffected.
func BrowserPDF(ctx context.Context, eng Engine, r expense.Record) (Result, error) {
	html, err := HTML(r)
	if err != nil {
		return Result{}, err
	}
	pdf, err := eng.PrintHTML(ctx, html)
	if err != nil {
		return Result{}, fmt.Errorf("print to pdf: %w", err)
	}
	return Result{PDF: pdf}, nil
}
