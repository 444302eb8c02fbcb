package fetch

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// Engine owns the headless browser allocator shared by all rendered fetches
// in one run. Each source scrape gets its own isolated browsing context from
// NewBrowserContext.
type Engine struct {
	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewEngine starts the browser allocator and verifies the browser can
// actually launch. A failure here is the one fatal error of a run: it
// surfaces before any source is scraped.
func NewEngine(ctx context.Context, headless bool) (*Engine, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(browserHeaders["User-Agent"]),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)

	// Launch once so a missing or broken browser binary fails the run up
	// front instead of inside the first rendered source.
	warmCtx, warmCancel := chromedp.NewContext(allocCtx)
	defer warmCancel()
	if err := chromedp.Run(warmCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("browser bootstrap: %w", err)
	}

	return &Engine{allocCtx: allocCtx, cancel: cancel}, nil
}

// NewBrowserContext returns a fresh isolated browsing context. The returned
// cancel func must be called when the source scrape completes.
func (e *Engine) NewBrowserContext() (context.Context, context.CancelFunc) {
	return chromedp.NewContext(e.allocCtx)
}

// Close tears down the allocator and every browser spawned from it.
func (e *Engine) Close() {
	e.cancel()
}
