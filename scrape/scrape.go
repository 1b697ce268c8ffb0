// Package scrape builds reports from the Python documentation and PEP
// sites. Each mode is a sequential pass over a fixed set of pages: one seed
// page plus the pages it links to.
package scrape

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/fwojciec/docscrape"
)

// Default site roots.
const (
	DefaultDocsURL = "https://docs.python.org/3/"
	DefaultPEPURL  = "https://peps.python.org/"
)

// Handler runs one mode. A nil Table means the mode produces no report.
type Handler func(ctx context.Context, progress docscrape.ProgressFunc) (docscrape.Table, error)

// Scraper builds reports from fetched pages.
type Scraper struct {
	Fetcher  docscrape.Fetcher
	Parser   docscrape.DocsParser
	Statuses *docscrape.StatusTable
	Archives docscrape.ArchiveStore
	Logger   *slog.Logger

	DocsURL string
	PEPURL  string
}

// Handler returns the handler bound to mode.
func (s *Scraper) Handler(mode docscrape.Mode) (Handler, error) {
	switch mode {
	case docscrape.ModeWhatsNew:
		return s.WhatsNew, nil
	case docscrape.ModeLatestVersions:
		return func(ctx context.Context, _ docscrape.ProgressFunc) (docscrape.Table, error) {
			return s.LatestVersions(ctx)
		}, nil
	case docscrape.ModeDownload:
		return func(ctx context.Context, _ docscrape.ProgressFunc) (docscrape.Table, error) {
			return nil, s.Download(ctx)
		}, nil
	case docscrape.ModePEP:
		return s.PEP, nil
	default:
		return nil, docscrape.Errorf(docscrape.EINVALID, "unknown mode %q", mode)
	}
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *Scraper) docsURL() string {
	if s.DocsURL == "" {
		return DefaultDocsURL
	}
	return s.DocsURL
}

func (s *Scraper) pepURL() string {
	if s.PEPURL == "" {
		return DefaultPEPURL
	}
	return s.PEPURL
}

// resolve resolves ref against base.
func resolve(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid base URL: %v", err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid URL reference: %v", err)
	}
	return b.ResolveReference(r).String(), nil
}

func report(progress docscrape.ProgressFunc, p docscrape.Progress) {
	if progress != nil {
		progress(p)
	}
}
