package fetch

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"foretagsradar/internal/domain"
)

// browserHeaders mimics a Swedish desktop browser. Most of the target sites
// serve a bot-wall to clients without them. Accept-Encoding is deliberately
// not listed: the transport offers gzip itself and transparently decodes the
// response, but only when the request leaves that header alone.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "sv-SE,sv;q=0.8,en-US;q=0.5,en;q=0.3",
	"Connection":      "keep-alive",
}

// StaticFetcher retrieves pages over plain HTTP with a fixed total timeout.
type StaticFetcher struct {
	client *http.Client
}

func NewStaticFetcher(timeout time.Duration) *StaticFetcher {
	return &StaticFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (f *StaticFetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Reason: "invalid request", Err: err}
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{URL: url, Status: resp.StatusCode, Reason: "unexpected status"}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Reason: "reading body", Err: err}
	}

	// Lossy decode: undecodable bytes become U+FFFD instead of failing
	// the page.
	html := strings.ToValidUTF8(string(body), "�")

	return &Result{HTML: html, Status: resp.StatusCode}, nil
}
