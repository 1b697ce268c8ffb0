package docscrape

import "context"

// Fetcher retrieves pages over the network.
// Implementations perform no retries: failures propagate immediately as
// *FetchError.
type Fetcher interface {
	// Fetch returns the page body decoded as UTF-8 text.
	Fetch(ctx context.Context, url string) (string, error)

	// FetchBytes returns the response body verbatim.
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// ResponseCache stores response bodies keyed by URL.
type ResponseCache interface {
	// Get returns the cached body for url. The boolean reports a hit.
	Get(ctx context.Context, url string) ([]byte, bool, error)

	// Put stores body for url, replacing any previous entry.
	Put(ctx context.Context, url string, body []byte) error

	// Clear removes every cached entry.
	Clear(ctx context.Context) error
}
