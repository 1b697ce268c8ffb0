package scrape_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/mock"
	"github.com/fwojciec/docscrape/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_WhatsNew(t *testing.T) {
	t.Parallel()

	const docsURL = "https://docs.python.org/3/"
	const indexURL = "https://docs.python.org/3/whatsnew/"

	newScraper := func(fetch func(url string) (string, error), logger *slog.Logger) *scrape.Scraper {
		return &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return fetch(url)
				},
			},
			Parser: &mock.DocsParser{
				ParseWhatsNewLinksFn: func(html, baseURL string) ([]string, error) {
					return []string{indexURL + "3.12.html", indexURL + "3.11.html"}, nil
				},
				ParseWhatsNewArticleFn: func(html string) (string, string, error) {
					if html == "broken" {
						return "", "", &docscrape.TagNotFoundError{Tag: "h1"}
					}
					return "What's New In " + html, "Editor " + html, nil
				},
			},
			Logger:  logger,
			DocsURL: docsURL,
		}
	}

	t.Run("lists every article", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		s := newScraper(func(url string) (string, error) {
			fetched = append(fetched, url)
			switch url {
			case indexURL:
				return "index", nil
			case indexURL + "3.12.html":
				return "3.12", nil
			default:
				return "3.11", nil
			}
		}, nil)

		table, err := s.WhatsNew(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, docscrape.Table{
			{"Article link", "Title", "Editor/Author"},
			{indexURL + "3.12.html", "What's New In 3.12", "Editor 3.12"},
			{indexURL + "3.11.html", "What's New In 3.11", "Editor 3.11"},
		}, table)
		assert.Equal(t, []string{indexURL, indexURL + "3.12.html", indexURL + "3.11.html"}, fetched)
	})

	t.Run("skips articles that fail to download", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		s := newScraper(func(url string) (string, error) {
			switch url {
			case indexURL:
				return "index", nil
			case indexURL + "3.12.html":
				return "", &docscrape.FetchError{URL: url, Err: errors.New("HTTP 500")}
			default:
				return "3.11", nil
			}
		}, slog.New(slog.NewTextHandler(&buf, nil)))

		var events []docscrape.Progress
		table, err := s.WhatsNew(context.Background(), func(p docscrape.Progress) {
			events = append(events, p)
		})

		require.NoError(t, err)
		assert.Equal(t, docscrape.Table{
			{"Article link", "Title", "Editor/Author"},
			{indexURL + "3.11.html", "What's New In 3.11", "Editor 3.11"},
		}, table)
		assert.Contains(t, buf.String(), "article skipped")
		require.Len(t, events, 2)
		assert.Error(t, events[0].Err)
		assert.NoError(t, events[1].Err)
		assert.Equal(t, 2, events[1].Total)
	})

	t.Run("article without title aborts", func(t *testing.T) {
		t.Parallel()

		s := newScraper(func(url string) (string, error) {
			if url == indexURL {
				return "index", nil
			}
			return "broken", nil
		}, nil)

		table, err := s.WhatsNew(context.Background(), nil)

		require.Error(t, err)
		assert.Nil(t, table)
		assert.Equal(t, docscrape.ENOTFOUND, docscrape.ErrorCode(err))
	})

	t.Run("index failure is returned", func(t *testing.T) {
		t.Parallel()

		s := newScraper(func(url string) (string, error) {
			return "", &docscrape.FetchError{URL: url, Err: errors.New("timeout")}
		}, nil)

		_, err := s.WhatsNew(context.Background(), nil)

		assert.Equal(t, docscrape.EUNAVAILABLE, docscrape.ErrorCode(err))
	})
}
