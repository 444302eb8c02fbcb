package fetch

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"foretagsradar/internal/domain"
)

// networkIdleTimeout caps how long a fetch waits for the page's network to
// go quiet after navigation. Pages that poll forever never fire networkIdle;
// whatever has rendered by then is used.
const networkIdleTimeout = 10 * time.Second

// RenderedFetcher navigates with a headless browser and returns the DOM
// after scripts have run. It opens a fresh tab per fetch inside the browsing
// context it was given.
type RenderedFetcher struct {
	browserCtx context.Context
	timeout    time.Duration
}

func NewRenderedFetcher(browserCtx context.Context, timeout time.Duration) *RenderedFetcher {
	return &RenderedFetcher{browserCtx: browserCtx, timeout: timeout}
}

func (f *RenderedFetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	tabCtx, cancel := chromedp.NewContext(f.browserCtx)
	defer cancel()
	tabCtx, tcancel := context.WithTimeout(tabCtx, f.timeout)
	defer tcancel()

	var html string
	err := chromedp.Run(tabCtx,
		navigateUntilIdle(url),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Reason: "navigation failed", Err: err}
	}

	// The CDP session does not expose the document status here; a page
	// that rendered is treated as 200.
	return &Result{HTML: html, Status: http.StatusOK}, nil
}

// navigateUntilIdle loads url and waits for the networkIdle lifecycle event,
// so script-driven listing pages have inserted their content before the DOM
// is read. The listener is attached before navigation starts, otherwise a
// fast page could go idle unobserved.
func navigateUntilIdle(url string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		if err := page.SetLifecycleEventsEnabled(true).Do(ctx); err != nil {
			return err
		}

		idle := make(chan struct{}, 1)
		lctx, lcancel := context.WithCancel(ctx)
		defer lcancel()
		chromedp.ListenTarget(lctx, func(ev interface{}) {
			if e, ok := ev.(*page.EventLifecycleEvent); ok && e.Name == "networkIdle" {
				select {
				case idle <- struct{}{}:
				default:
				}
			}
		})

		_, _, errText, _, err := page.Navigate(url).Do(ctx)
		if err != nil {
			return err
		}
		if errText != "" {
			return errors.New(errText)
		}

		select {
		case <-idle:
			return nil
		case <-time.After(networkIdleTimeout):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
