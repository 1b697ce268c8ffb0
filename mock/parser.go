package mock

import "github.com/fwojciec/docscrape"

var _ docscrape.DocsParser = (*DocsParser)(nil)

// DocsParser is a mock implementation of docscrape.DocsParser.
type DocsParser struct {
	ParsePEPIndexFn        func(html, baseURL string) ([]docscrape.IndexRow, error)
	ParsePEPStatusFn       func(html string) (string, error)
	ParseWhatsNewLinksFn   func(html, baseURL string) ([]string, error)
	ParseWhatsNewArticleFn func(html string) (string, string, error)
	ParseVersionLinksFn    func(html, baseURL string) ([]docscrape.Link, error)
	ParseArchiveLinkFn     func(html, baseURL string) (string, error)
}

func (p *DocsParser) ParsePEPIndex(html, baseURL string) ([]docscrape.IndexRow, error) {
	return p.ParsePEPIndexFn(html, baseURL)
}

func (p *DocsParser) ParsePEPStatus(html string) (string, error) {
	return p.ParsePEPStatusFn(html)
}

func (p *DocsParser) ParseWhatsNewLinks(html, baseURL string) ([]string, error) {
	return p.ParseWhatsNewLinksFn(html, baseURL)
}

func (p *DocsParser) ParseWhatsNewArticle(html string) (string, string, error) {
	return p.ParseWhatsNewArticleFn(html)
}

func (p *DocsParser) ParseVersionLinks(html, baseURL string) ([]docscrape.Link, error) {
	return p.ParseVersionLinksFn(html, baseURL)
}

func (p *DocsParser) ParseArchiveLink(html, baseURL string) (string, error) {
	return p.ParseArchiveLinkFn(html, baseURL)
}
