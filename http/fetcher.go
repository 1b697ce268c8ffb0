// Package http provides a resty-based implementation of docscrape.Fetcher
// with an optional response cache.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/docscrape"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultEncoding is the text encoding applied to every page body,
// regardless of what the server declares.
const DefaultEncoding = "utf-8"

// DefaultUserAgent identifies the scraper to the documentation servers.
const DefaultUserAgent = "docscrape/1.0 (+https://github.com/fwojciec/docscrape)"

// Ensure Fetcher implements docscrape.Fetcher at compile time.
var _ docscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages using HTTP GET requests.
// It never retries: a failed request is returned as *docscrape.FetchError.
type Fetcher struct {
	client    *resty.Client
	timeout   time.Duration
	userAgent string
	encoding  string
	cache     docscrape.ResponseCache
	limiter   *HostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithEncoding sets the label of the encoding used to decode page text.
func WithEncoding(label string) Option {
	return func(f *Fetcher) {
		f.encoding = label
	}
}

// WithCache consults cache before the network and stores successful bodies in it.
// Cache errors are treated as misses.
func WithCache(cache docscrape.ResponseCache) Option {
	return func(f *Fetcher) {
		f.cache = cache
	}
}

// WithRateLimit limits network requests to rps per second for each host.
// Cache hits are not limited. Zero or negative disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = NewHostLimiter(rps)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		encoding:  DefaultEncoding,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = resty.New().
		SetTimeout(f.timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", f.userAgent)

	return f
}

// Fetch retrieves the page at url and decodes it as text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := f.FetchBytes(ctx, url)
	if err != nil {
		return "", err
	}

	r, err := charset.NewReaderLabel(f.encoding, bytes.NewReader(body))
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "unsupported encoding %q: %v", f.encoding, err)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", &docscrape.FetchError{URL: url, Err: err}
	}
	return string(text), nil
}

// FetchBytes retrieves the raw response body at url.
func (f *Fetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	if f.cache != nil {
		if body, ok, err := f.cache.Get(ctx, url); err == nil && ok {
			return body, nil
		}
	}

	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, url); err != nil {
			return nil, &docscrape.FetchError{URL: url, Err: err}
		}
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, &docscrape.FetchError{URL: url, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &docscrape.FetchError{URL: url, Err: fmt.Errorf("HTTP %d", resp.StatusCode())}
	}

	body := resp.Body()
	if f.cache != nil {
		_ = f.cache.Put(ctx, url, body)
	}
	return body, nil
}
