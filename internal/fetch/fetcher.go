package fetch

import "context"

// Result is one retrieved page.
type Result struct {
	HTML   string
	Status int
}

// Fetcher retrieves a single page. Implementations: StaticFetcher for plain
// HTTP, RenderedFetcher for browser-driven navigation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Result, error)
}
