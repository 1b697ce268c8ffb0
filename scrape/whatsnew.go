package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/docscrape"
)

// WhatsNew lists every "What's New" article with its title and editors.
// Articles that fail to download are logged and skipped.
func (s *Scraper) WhatsNew(ctx context.Context, progress docscrape.ProgressFunc) (docscrape.Table, error) {
	indexURL, err := resolve(s.docsURL(), "whatsnew/")
	if err != nil {
		return nil, err
	}
	html, err := s.Fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	links, err := s.Parser.ParseWhatsNewLinks(html, indexURL)
	if err != nil {
		return nil, err
	}

	table := docscrape.NewTable("Article link", "Title", "Editor/Author")
	for i, link := range links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := s.Fetcher.Fetch(ctx, link)
		report(progress, docscrape.Progress{
			URL:       link,
			Completed: i + 1,
			Total:     len(links),
			Err:       err,
		})
		if err != nil {
			s.logger().Error("article skipped", "url", link, "err", err)
			continue
		}

		title, author, err := s.Parser.ParseWhatsNewArticle(page)
		if err != nil {
			return nil, fmt.Errorf("article %s: %w", link, err)
		}
		table.Append(link, title, author)
	}
	return table, nil
}
