package scrape_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/mock"
	"github.com/fwojciec/docscrape/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScraper_Handler(t *testing.T) {
	t.Parallel()

	t.Run("every mode has a handler", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{}
		for _, mode := range docscrape.Modes() {
			h, err := s.Handler(mode)
			require.NoError(t, err, mode)
			assert.NotNil(t, h, mode)
		}
	})

	t.Run("unknown mode is invalid", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{}
		_, err := s.Handler(docscrape.Mode("sitemap"))

		assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
	})

	t.Run("download handler returns no table", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn:      func(context.Context, string) (string, error) { return "downloads", nil },
				FetchBytesFn: func(context.Context, string) ([]byte, error) { return []byte("zip"), nil },
			},
			Parser: &mock.DocsParser{
				ParseArchiveLinkFn: func(string, string) (string, error) {
					return "https://docs.python.org/3/archives/docs-pdf-a4.zip", nil
				},
			},
			Archives: &mock.ArchiveStore{
				SaveFn: func(name string, _ []byte) (string, error) { return name, nil },
			},
		}

		h, err := s.Handler(docscrape.ModeDownload)
		require.NoError(t, err)

		table, err := h(context.Background(), nil)

		require.NoError(t, err)
		assert.Nil(t, table)
	})

	t.Run("latest-versions uses the configured docs root", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					assert.Equal(t, "http://mirror.local/3/", url)
					return "landing", nil
				},
			},
			Parser: &mock.DocsParser{
				ParseVersionLinksFn: func(html, baseURL string) ([]docscrape.Link, error) {
					assert.Equal(t, "http://mirror.local/3/", baseURL)
					return nil, nil
				},
			},
			DocsURL: "http://mirror.local/3/",
		}

		h, err := s.Handler(docscrape.ModeLatestVersions)
		require.NoError(t, err)

		table, err := h(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, docscrape.Table{{"Documentation link", "Version", "Status"}}, table)
	})
}
