package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// Ensure LoggingParser implements docscrape.DocsParser.
var _ docscrape.DocsParser = (*LoggingParser)(nil)

// LoggingParser wraps a DocsParser with debug logging of parse results.
type LoggingParser struct {
	next   docscrape.DocsParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next docscrape.DocsParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

func (p *LoggingParser) log(page string, begin time.Time, count int, err error) {
	if err != nil {
		p.logger.Debug("parse", "page", page, "duration", time.Since(begin), "err", err)
		return
	}
	p.logger.Debug("parse", "page", page, "count", count, "duration", time.Since(begin))
}

// ParsePEPIndex delegates to the wrapped parser.
func (p *LoggingParser) ParsePEPIndex(html, baseURL string) (rows []docscrape.IndexRow, err error) {
	defer func(begin time.Time) { p.log("pep index", begin, len(rows), err) }(time.Now())
	return p.next.ParsePEPIndex(html, baseURL)
}

// ParsePEPStatus delegates to the wrapped parser.
func (p *LoggingParser) ParsePEPStatus(html string) (status string, err error) {
	defer func(begin time.Time) { p.log("pep", begin, 1, err) }(time.Now())
	return p.next.ParsePEPStatus(html)
}

// ParseWhatsNewLinks delegates to the wrapped parser.
func (p *LoggingParser) ParseWhatsNewLinks(html, baseURL string) (links []string, err error) {
	defer func(begin time.Time) { p.log("whatsnew index", begin, len(links), err) }(time.Now())
	return p.next.ParseWhatsNewLinks(html, baseURL)
}

// ParseWhatsNewArticle delegates to the wrapped parser.
func (p *LoggingParser) ParseWhatsNewArticle(html string) (title, author string, err error) {
	defer func(begin time.Time) { p.log("whatsnew article", begin, 1, err) }(time.Now())
	return p.next.ParseWhatsNewArticle(html)
}

// ParseVersionLinks delegates to the wrapped parser.
func (p *LoggingParser) ParseVersionLinks(html, baseURL string) (links []docscrape.Link, err error) {
	defer func(begin time.Time) { p.log("versions", begin, len(links), err) }(time.Now())
	return p.next.ParseVersionLinks(html, baseURL)
}

// ParseArchiveLink delegates to the wrapped parser.
func (p *LoggingParser) ParseArchiveLink(html, baseURL string) (link string, err error) {
	defer func(begin time.Time) { p.log("downloads", begin, 1, err) }(time.Now())
	return p.next.ParseArchiveLink(html, baseURL)
}
