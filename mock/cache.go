package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

var _ docscrape.ResponseCache = (*ResponseCache)(nil)

// ResponseCache is a mock implementation of docscrape.ResponseCache.
type ResponseCache struct {
	GetFn   func(ctx context.Context, url string) ([]byte, bool, error)
	PutFn   func(ctx context.Context, url string, body []byte) error
	ClearFn func(ctx context.Context) error
}

func (c *ResponseCache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	return c.GetFn(ctx, url)
}

func (c *ResponseCache) Put(ctx context.Context, url string, body []byte) error {
	return c.PutFn(ctx, url, body)
}

func (c *ResponseCache) Clear(ctx context.Context) error {
	return c.ClearFn(ctx)
}
