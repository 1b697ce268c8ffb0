package scrape

import (
	"context"

	"github.com/fwojciec/docscrape"
)

// Download saves the A4 PDF documentation archive linked from the
// downloads page.
func (s *Scraper) Download(ctx context.Context) error {
	downloadsURL, err := resolve(s.docsURL(), "download.html")
	if err != nil {
		return err
	}
	html, err := s.Fetcher.Fetch(ctx, downloadsURL)
	if err != nil {
		return err
	}
	archiveURL, err := s.Parser.ParseArchiveLink(html, downloadsURL)
	if err != nil {
		return err
	}
	name, err := docscrape.ArchiveName(archiveURL)
	if err != nil {
		return err
	}

	data, err := s.Fetcher.FetchBytes(ctx, archiveURL)
	if err != nil {
		return err
	}
	path, err := s.Archives.Save(name, data)
	if err != nil {
		return err
	}

	s.logger().Info("archive saved", "path", path)
	return nil
}
